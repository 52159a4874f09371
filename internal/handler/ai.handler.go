package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"reviewhub/internal/ai"
	"reviewhub/pkg/response"
)

type AIHandler struct {
	client *ai.Client
	log    *zap.Logger
}

func NewAIHandler(client *ai.Client, log *zap.Logger) *AIHandler {
	return &AIHandler{client: client, log: log}
}

type toxicityBody struct {
	Text string `json:"text"`
}

func (h *AIHandler) HandleToxicity(w http.ResponseWriter, r *http.Request) {
	var body toxicityBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		response.Error(w, http.StatusBadRequest, "text is required")
		return
	}

	score := h.client.ToxicityScore(r.Context(), body.Text)
	response.JSON(w, http.StatusOK, map[string]float64{"score": score})
}

type globalSearchBody struct {
	Query string `json:"query"`
}

func (h *AIHandler) HandleGlobalSearch(w http.ResponseWriter, r *http.Request) {
	var body globalSearchBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Query == "" {
		response.Error(w, http.StatusBadRequest, "query is required")
		return
	}

	text, sources, err := h.client.GlobalSearch(r.Context(), body.Query)
	if err != nil {
		h.log.Warn("global search failed", zap.Error(err))
		response.Error(w, http.StatusBadGateway, "Investigation failed. Try again later.")
		return
	}
	if sources == nil {
		sources = []ai.Source{}
	}
	response.JSON(w, http.StatusOK, map[string]any{"text": text, "sources": sources})
}
