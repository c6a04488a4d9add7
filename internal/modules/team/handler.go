package team

import (
	"errors"
	"net/http"

	"github.com/foodsafe/foodsafe-backend/internal/api"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/api/business/team-members", h.createMember)
	router.Get("/api/business/{id}/team-members", h.listMembers)
}

func (h *Handler) createMember(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	members, err := h.service.Create(r.Context(), req)
	if errors.Is(err, ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to add team member")
		return
	}

	api.OK(w, members)
}

func (h *Handler) listMembers(w http.ResponseWriter, r *http.Request) {
	businessID, err := business.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	members, err := h.service.List(r.Context(), businessID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch team members")
		return
	}

	api.OK(w, members)
}
