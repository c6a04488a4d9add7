package manufacturing

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
	router.Get("/api/business/manufacturing/details/{businessId}", h.getDetails)
	router.Put("/api/business/manufacturing/details/{businessId}", h.updateDetails)
	router.Post("/api/business/manufacturing/batches", h.createBatch)
	router.Get("/api/business/manufacturing/batches/{businessId}", h.listBatches)
	router.Post("/api/business/manufacturing/packaging", h.createPackaging)
	router.Get("/api/business/manufacturing/packaging/{businessId}", h.listPackaging)
	router.Post("/api/business/manufacturing/suppliers", h.createSupplier)
	router.Get("/api/business/manufacturing/suppliers/{businessId}", h.listSuppliers)
}

func (h *Handler) businessID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := business.ParseID(chi.URLParam(r, "businessId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return 0, false
	}
	return id, true
}

func (h *Handler) getDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := h.businessID(w, r)
	if !ok {
		return
	}

	details, err := h.service.DetailsForBusiness(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch manufacturing details")
		return
	}

	api.OK(w, details)
}

func (h *Handler) updateDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := h.businessID(w, r)
	if !ok {
		return
	}

	var in DetailsInput
	if err := api.Decode(r, &in); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	details, err := h.service.UpdateDetails(r.Context(), id, in)
	if errors.Is(err, ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update manufacturing details")
		return
	}

	api.OK(w, details)
}

func (h *Handler) createBatch(w http.ResponseWriter, r *http.Request) {
	var b Batch
	if err := api.Decode(r, &b); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.AddBatch(r.Context(), &b)
	if errors.Is(err, ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to add batch")
		return
	}

	api.OK(w, &b)
}

func (h *Handler) listBatches(w http.ResponseWriter, r *http.Request) {
	id, ok := h.businessID(w, r)
	if !ok {
		return
	}

	batches, err := h.service.ListBatches(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch batches")
		return
	}

	api.OK(w, batches)
}

func (h *Handler) createPackaging(w http.ResponseWriter, r *http.Request) {
	var p PackagingCompliance
	if err := api.Decode(r, &p); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.AddPackaging(r.Context(), &p)
	if errors.Is(err, ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to add packaging record")
		return
	}

	api.OK(w, &p)
}

func (h *Handler) listPackaging(w http.ResponseWriter, r *http.Request) {
	id, ok := h.businessID(w, r)
	if !ok {
		return
	}

	records, err := h.service.ListPackaging(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch packaging records")
		return
	}

	api.OK(w, records)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var s Supplier
	if err := api.Decode(r, &s); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.AddSupplier(r.Context(), &s)
	if errors.Is(err, ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to add supplier")
		return
	}

	api.OK(w, &s)
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	id, ok := h.businessID(w, r)
	if !ok {
		return
	}

	suppliers, err := h.service.ListSuppliers(r.Context(), id)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch suppliers")
		return
	}

	api.OK(w, suppliers)
}
