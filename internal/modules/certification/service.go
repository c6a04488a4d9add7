package certification

import (
	"context"
	"errors"
)

// ErrMissingFields is returned when a create request omits a required field.
var ErrMissingFields = errors.New("missing required fields")

// Service defines certification business logic.
type Service interface {
	// Create inserts a certification with status Active and returns the full
	// updated list for the business.
	Create(ctx context.Context, req CreateRequest) ([]*Certification, error)
	List(ctx context.Context, businessID int64) ([]*Certification, error)
}

type service struct{ repo Repository }

// NewService creates a new certification service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateRequest) ([]*Certification, error) {
	if req.BusinessID <= 0 || req.CertificationType == "" || req.Number == "" ||
		req.ValidFrom == "" || req.ValidTo == "" {
		return nil, ErrMissingFields
	}

	c := &Certification{
		BusinessID:        req.BusinessID,
		CertificationType: req.CertificationType,
		Number:            req.Number,
		ValidFrom:         req.ValidFrom,
		ValidTo:           req.ValidTo,
		Status:            StatusActive,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	return s.repo.ListByBusiness(ctx, req.BusinessID)
}

func (s *service) List(ctx context.Context, businessID int64) ([]*Certification, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}
