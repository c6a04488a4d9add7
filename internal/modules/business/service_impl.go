package business

import (
	"context"
	"fmt"
)

type service struct{ repo Repository }

// NewService creates a new business service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Register(ctx context.Context, req RegisterRequest) (*Business, error) {
	if req.BusinessName == "" || req.PhoneNumber == "" || req.LicenseNumber == "" || req.BusinessType == "" {
		return nil, ErrMissingFields
	}

	typ := BusinessType(req.BusinessType)
	if typ != TypeRestaurant && typ != TypeManufacturer {
		return nil, fmt.Errorf("%w %q", ErrUnknownType, req.BusinessType)
	}

	b := &Business{
		Name:          req.BusinessName,
		Phone:         req.PhoneNumber,
		LicenseNumber: req.LicenseNumber,
		BusinessType:  typ,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetBusiness(ctx context.Context, id int64) (*Business, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateBusiness(ctx context.Context, id int64, req UpdateRequest) (*Business, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != "" {
		b.Name = req.Name
	}
	if req.Address != "" {
		b.Address = req.Address
	}
	if req.Phone != "" {
		b.Phone = req.Phone
	}
	if req.Email != "" {
		b.Email = req.Email
	}
	if req.LicenseNumber != "" {
		b.LicenseNumber = req.LicenseNumber
	}
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}
