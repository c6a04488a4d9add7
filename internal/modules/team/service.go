package team

import (
	"context"
	"errors"
)

// ErrMissingFields is returned when a create request omits a required field.
var ErrMissingFields = errors.New("missing required fields")

// Service defines team member business logic.
type Service interface {
	// Create inserts a member and returns the full updated list for the business.
	Create(ctx context.Context, req CreateRequest) ([]*Member, error)
	List(ctx context.Context, businessID int64) ([]*Member, error)
}

type service struct{ repo Repository }

// NewService creates a new team member service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateRequest) ([]*Member, error) {
	if req.BusinessID <= 0 || req.Name == "" || req.Role == "" {
		return nil, ErrMissingFields
	}

	m := &Member{
		BusinessID: req.BusinessID,
		Name:       req.Name,
		Role:       req.Role,
		PhotoURL:   req.PhotoURL,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	return s.repo.ListByBusiness(ctx, req.BusinessID)
}

func (s *service) List(ctx context.Context, businessID int64) ([]*Member, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}
