package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sapirHafner/Library-management-project/models"
	"github.com/sapirHafner/Library-management-project/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RatingsHandler struct {
	Ledger *service.Ledger
}

// List serves GET /ratings, optionally narrowed to a single entry with
// ?id=.
func (h *RatingsHandler) List(w http.ResponseWriter, r *http.Request) {
	if idStr := r.URL.Query().Get("id"); idStr != "" {
		h.writeOne(w, r, idStr)
		return
	}
	ratings, err := h.Ledger.List(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to list ratings")
		return
	}
	if ratings == nil {
		ratings = []models.Rating{}
	}
	writeJSON(w, http.StatusOK, ratings)
}

func (h *RatingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeOne(w, r, chi.URLParam(r, "id"))
}

func (h *RatingsHandler) writeOne(w http.ResponseWriter, r *http.Request, idStr string) {
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "rating not found")
		return
	}
	rating, err := h.Ledger.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			errorJSON(w, http.StatusNotFound, "rating not found")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, rating)
}

// AppendValue serves POST /ratings/{id}/values with body {"value": n}.
func (h *RatingsHandler) AppendValue(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		errorJSON(w, http.StatusNotFound, "rating not found")
		return
	}
	var req struct {
		Value *int `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Value == nil {
		errorJSON(w, http.StatusUnprocessableEntity, "value must be an integer between 1 and 5")
		return
	}
	if err := h.Ledger.AppendValue(r.Context(), id, *req.Value); err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			errorJSON(w, http.StatusUnprocessableEntity, verr.Message)
		case errors.Is(err, service.ErrNotFound):
			errorJSON(w, http.StatusNotFound, "rating not found")
		default:
			errorJSON(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": idStr})
}

// Top serves GET /top. An empty ranking is a successful empty list, never
// an error.
func (h *RatingsHandler) Top(w http.ResponseWriter, r *http.Request) {
	top, err := h.Ledger.TopRated(r.Context())
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "failed to compute ranking")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]service.RankedBook{"top": top})
}
