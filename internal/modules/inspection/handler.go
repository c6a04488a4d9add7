package inspection

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/foodsafe/foodsafe-backend/internal/api"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/api/officer/inspections", h.scheduleInspection)
	router.Put("/api/officer/inspections/{id}/status", h.updateInspection)
	router.Get("/api/business/{id}/inspections", h.listInspections)
	router.Post("/api/officer/compliance-actions", h.issueAction)
	router.Put("/api/officer/compliance-actions/{id}/resolve", h.resolveAction)
	router.Get("/api/business/{id}/compliance-actions", h.listActions)
}

func (h *Handler) scheduleInspection(w http.ResponseWriter, r *http.Request) {
	type request struct {
		BusinessID    int64  `json:"business_id"`
		OfficerID     string `json:"officer_id"`
		ScheduledDate string `json:"scheduled_date"`
	}

	var req request
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	officerID, err := uuid.Parse(req.OfficerID)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid officer id")
		return
	}

	i, err := h.service.Schedule(r.Context(), req.BusinessID, officerID, req.ScheduledDate)
	if errors.Is(err, ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to schedule inspection")
		return
	}

	api.Created(w, i)
}

func (h *Handler) updateInspection(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid inspection id")
		return
	}

	type request struct {
		Status   InspectionStatus `json:"status"`
		Rating   int              `json:"rating"`
		Comments string           `json:"comments"`
	}

	var req request
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	switch req.Status {
	case StatusCompleted:
		err = h.service.Complete(r.Context(), id, req.Rating, req.Comments)
	case StatusCancelled:
		err = h.service.Cancel(r.Context(), id)
	default:
		api.Fail(w, http.StatusBadRequest, "unsupported status transition")
		return
	}

	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to update inspection")
		return
	}

	api.OK(w, map[string]int64{"id": id})
}

func (h *Handler) listInspections(w http.ResponseWriter, r *http.Request) {
	businessID, err := business.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	inspections, err := h.service.ListForBusiness(r.Context(), businessID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch inspections")
		return
	}

	api.OK(w, inspections)
}

func (h *Handler) listActions(w http.ResponseWriter, r *http.Request) {
	businessID, err := business.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	actions, err := h.service.ListActions(r.Context(), businessID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to fetch compliance actions")
		return
	}

	api.OK(w, actions)
}

func (h *Handler) issueAction(w http.ResponseWriter, r *http.Request) {
	var a ComplianceAction
	if err := api.Decode(r, &a); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.service.IssueAction(r.Context(), &a)
	if errors.Is(err, ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to issue compliance action")
		return
	}

	api.Created(w, &a)
}

func (h *Handler) resolveAction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid action id")
		return
	}

	err = h.service.ResolveAction(r.Context(), id)
	if errors.Is(err, ErrNotFound) {
		api.Fail(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to resolve compliance action")
		return
	}

	api.OK(w, map[string]int64{"id": id})
}
