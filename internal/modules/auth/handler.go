package auth

import (
	"errors"
	"net/http"

	"github.com/foodsafe/foodsafe-backend/internal/api"
	"github.com/foodsafe/foodsafe-backend/internal/modules/account"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service  Service
	accounts account.Service
}

func NewHandler(service Service, accounts account.Service) *Handler {
	return &Handler{service: service, accounts: accounts}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/api/business/register", h.registerBusiness)
	router.Post("/api/business/login", h.loginBusiness)
	router.Post("/api/consumer/register", h.registerConsumer)
	router.Post("/api/consumer/login", h.loginConsumer)
}

func (h *Handler) registerBusiness(w http.ResponseWriter, r *http.Request) {
	var req business.RegisterRequest
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.service.RegisterBusiness(r.Context(), req)
	if errors.Is(err, business.ErrMissingFields) || errors.Is(err, business.ErrUnknownType) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to register business")
		return
	}

	api.OK(w, session)
}

func (h *Handler) loginBusiness(w http.ResponseWriter, r *http.Request) {
	type request struct {
		PhoneNumber   string `json:"phoneNumber"`
		LicenseNumber string `json:"licenseNumber"`
		BusinessType  string `json:"businessType"`
	}

	var req request
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PhoneNumber == "" || req.LicenseNumber == "" || req.BusinessType == "" {
		api.Fail(w, http.StatusBadRequest, "missing required fields")
		return
	}

	session, err := h.service.LoginBusiness(r.Context(), req.PhoneNumber, req.LicenseNumber, req.BusinessType)
	if errors.Is(err, ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to process login")
		return
	}

	api.OK(w, session)
}

func (h *Handler) registerConsumer(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Name     string `json:"name"`
		Phone    string `json:"phone"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := h.accounts.Register(r.Context(), req.Name, req.Phone, req.Email, req.Password, account.RoleConsumer)
	if errors.Is(err, account.ErrMissingFields) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to register account")
		return
	}

	api.Created(w, a)
}

func (h *Handler) loginConsumer(w http.ResponseWriter, r *http.Request) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var req request
	if err := api.Decode(r, &req); err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		api.Fail(w, http.StatusBadRequest, "missing required fields")
		return
	}

	token, a, err := h.service.LoginAccount(r.Context(), req.Email, req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		api.Fail(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to process login")
		return
	}

	api.OK(w, map[string]interface{}{"token": token, "account": a})
}
