package certification

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
	router.Post("/api/business/certifications", h.createCertification)
	router.Get("/api/business/certifications/{businessId}", h.listCertifications)
}

func (h *Handler) createCertification(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	certs, err := h.service.Create(r.Context(), req)
	if errors.Is(err, ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to add certification")
		return
	}

	api.OK(w, certs)
}

func (h *Handler) listCertifications(w http.ResponseWriter, r *http.Request) {
	businessID, err := business.ParseID(chi.URLParam(r, "businessId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	certs, err := h.service.List(r.Context(), businessID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch certifications")
		return
	}

	api.OK(w, certs)
}
