package facility

import (
	"errors"
	"net/http"

	"github.com/foodsafe/foodsafe-backend/internal/api"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
	"github.com/go-chi/chi/v5"
)

const maxUploadBytes = 32 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/api/business/facility-photos", h.createPhoto)
	router.Get("/api/business/facility-photos/{businessId}", h.listPhotos)
}

func (h *Handler) createPhoto(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	location := r.FormValue("location")
	rawID := r.FormValue("business_id")
	file, header, err := r.FormFile("photo")
	if rawID == "" || location == "" || err != nil {
		api.Fail(w, http.StatusBadRequest, "missing required fields")
		return
	}
	defer file.Close()

	businessID, err := business.ParseID(rawID)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	p, err := h.service.AddPhoto(r.Context(), businessID, location, r.FormValue("description"), header.Filename, file)
	if errors.Is(err, ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to add facility photo")
		return
	}

	api.OK(w, p)
}

func (h *Handler) listPhotos(w http.ResponseWriter, r *http.Request) {
	businessID, err := business.ParseID(chi.URLParam(r, "businessId"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	photos, err := h.service.List(r.Context(), businessID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch facility photos")
		return
	}

	api.OK(w, photos)
}
