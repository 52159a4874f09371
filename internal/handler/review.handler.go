package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"reviewhub/internal/middleware"
	"reviewhub/internal/service"
	"reviewhub/pkg/response"
	"reviewhub/pkg/xerrors"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Auth required.")
		return
	}

	var in service.CreateReviewInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rev, err := h.svc.Create(r.Context(), userID, middleware.GetUserName(r.Context()), in)
	if err != nil {
		if errors.Is(err, xerrors.ErrToxicContent) {
			response.Error(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to create review")
		return
	}
	response.JSON(w, http.StatusCreated, rev)
}

func (h *ReviewHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	reviews, err := h.svc.List(r.Context(), filter)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch reviews")
		return
	}
	response.JSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Auth required.")
		return
	}
	reviews, err := h.svc.ListByUser(r.Context(), userID)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch reviews")
		return
	}
	response.JSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "search failed")
		return
	}
	response.JSON(w, http.StatusOK, reviews)
}

type voteBody struct {
	Direction string `json:"direction"`
}

func (h *ReviewHandler) HandleVote(w http.ResponseWriter, r *http.Request) {
	var body voteBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Direction != "up" && body.Direction != "down" {
		response.Error(w, http.StatusBadRequest, "direction must be up or down")
		return
	}

	if err := h.svc.Vote(r.Context(), chi.URLParam(r, "id"), body.Direction); err != nil {
		response.Error(w, http.StatusNotFound, "review not found")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

type commentBody struct {
	Text string `json:"text"`
}

func (h *ReviewHandler) HandleAddComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Auth required.")
		return
	}

	var body commentBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
		response.Error(w, http.StatusBadRequest, "comment text required")
		return
	}

	c, err := h.svc.AddComment(r.Context(), chi.URLParam(r, "id"), userID, middleware.GetUserName(r.Context()), body.Text)
	if err != nil {
		if errors.Is(err, xerrors.ErrReviewMissing) {
			response.Error(w, http.StatusNotFound, "review not found")
			return
		}
		response.Error(w, http.StatusInternalServerError, "failed to add comment")
		return
	}
	response.JSON(w, http.StatusCreated, c)
}

func (h *ReviewHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.svc.Comments(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to fetch comments")
		return
	}
	response.JSON(w, http.StatusOK, comments)
}

type reportBody struct {
	Reason string `json:"reason"`
}

func (h *ReviewHandler) HandleReport(w http.ResponseWriter, r *http.Request) {
	var body reportBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Reason == "" {
		response.Error(w, http.StatusBadRequest, "reason required")
		return
	}

	if err := h.svc.Report(r.Context(), chi.URLParam(r, "id"), body.Reason); err != nil {
		response.Error(w, http.StatusInternalServerError, "failed to report review")
		return
	}
	response.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
