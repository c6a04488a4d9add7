package account

import (
	"context"
	"errors"
)

// ErrMissingFields is returned when a registration request omits a required field.
var ErrMissingFields = errors.New("missing required fields")

// Service defines account-related business logic.
type Service interface {
	Register(ctx context.Context, name, phone, email, password string, role Role) (*Account, error)
	GetAccount(ctx context.Context, id string) (*Account, error)
}
