package business

import (
	"context"
	"errors"
	"net/http"

	"github.com/foodsafe/foodsafe-backend/internal/api"
	"github.com/go-chi/chi/v5"
)

// DetailsSource resolves the manufacturing extension for a business, when one
// exists. Wired from the manufacturing module to avoid a package cycle.
type DetailsSource interface {
	DetailsForBusiness(ctx context.Context, businessID int64) (interface{}, error)
}

type Handler struct {
	service Service
	details DetailsSource
}

func NewHandler(service Service, details DetailsSource) *Handler {
	return &Handler{service: service, details: details}
}

// RegisterRoutes mounts the profile endpoints. The router is expected to carry
// bearer authentication already.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/api/business/{id}", h.getBusiness)
	router.Put("/api/business/{id}", h.updateBusiness)
}

func (h *Handler) getBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.service.GetBusiness(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "business not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch business details")
		return
	}

	if b.BusinessType == TypeManufacturer && h.details != nil {
		if details, err := h.details.DetailsForBusiness(r.Context(), b.ID); err == nil {
			b.ManufacturingDetails = details
		}
	}

	api.OK(w, b)
}

func (h *Handler) updateBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := ParseID(chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	var req UpdateRequest
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	b, err := h.service.UpdateBusiness(r.Context(), id, req)
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "business not found")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update business")
		return
	}

	api.OK(w, b)
}
