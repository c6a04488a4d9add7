package review

import (
	"net/http"

	"github.com/foodsafe/foodsafe-backend/internal/api"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
	"github.com/go-chi/chi/v5"
)

// Handler serves the read-only review and hygiene rating lists. There is no
// service layer: both endpoints are straight repository reads.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/api/business/{id}/reviews", h.listReviews)
	router.Get("/api/business/{id}/hygiene-ratings", h.listHygieneRatings)
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	businessID, err := business.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	reviews, err := h.repo.ListReviews(r.Context(), businessID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch reviews")
		return
	}

	api.OK(w, reviews)
}

func (h *Handler) listHygieneRatings(w http.ResponseWriter, r *http.Request) {
	businessID, err := business.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	ratings, err := h.repo.ListHygieneRatings(r.Context(), businessID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch hygiene ratings")
		return
	}

	api.OK(w, ratings)
}
