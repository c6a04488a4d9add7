package business

import (
	"context"
	"errors"
)

// ErrMissingFields is returned when a registration request omits a required field.
var ErrMissingFields = errors.New("missing required fields")

// ErrUnknownType is returned when the business type is not restaurant or manufacturer.
var ErrUnknownType = errors.New("unknown business type")

// Service defines business profile logic.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*Business, error)
	GetBusiness(ctx context.Context, id int64) (*Business, error)
	UpdateBusiness(ctx context.Context, id int64, req UpdateRequest) (*Business, error)
}

// RegisterRequest holds the minimal fields captured at registration.
type RegisterRequest struct {
	BusinessName  string `json:"businessName"`
	PhoneNumber   string `json:"phoneNumber"`
	LicenseNumber string `json:"licenseNumber"`
	BusinessType  string `json:"businessType"`
}

// UpdateRequest is the dashboard edit payload. Empty fields keep their value.
type UpdateRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LicenseNumber string `json:"license_number"`
}
