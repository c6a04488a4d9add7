package labreport

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
	router.Post("/api/business/lab-reports", h.createLabReport)
	router.Get("/api/business/lab-reports/{businessId}", h.listLabReports)
}

func (h *Handler) createLabReport(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	reports, err := h.service.Create(r.Context(), req)
	if errors.Is(err, ErrMissingFields) || errors.Is(err, ErrInvalidStatus) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to add lab report")
		return
	}

	api.OK(w, reports)
}

func (h *Handler) listLabReports(w http.ResponseWriter, r *http.Request) {
	businessID, err := business.ParseID(chi.URLParam(r, "businessId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	reports, err := h.service.List(r.Context(), businessID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch lab reports")
		return
	}

	api.OK(w, reports)
}
