package handler

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"reviewhub/internal/legal"
	"reviewhub/internal/service"
	"reviewhub/pkg/response"
)

type ConfigHandler struct {
	svc *service.ConfigService
}

func NewConfigHandler(svc *service.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

func (h *ConfigHandler) HandleCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.Categories(r.Context())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to load config")
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"categories": cats})
}

func (h *ConfigHandler) HandleLegalDoc(w http.ResponseWriter, r *http.Request) {
	doc, ok := legal.Get(chi.URLParam(r, "doc"))
	if !ok {
		response.Error(w, http.StatusNotFound, "document not found")
		return
	}
	response.JSON(w, http.StatusOK, doc)
}

func (h *ConfigHandler) HandleLegalIndex(w http.ResponseWriter, r *http.Request) {
	keys := legal.Keys()
	sort.Strings(keys)
	response.JSON(w, http.StatusOK, map[string][]string{"documents": keys})
}
