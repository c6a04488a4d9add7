package manufacturing

import (
	"context"
	"errors"
)

// ErrMissingFields is returned when a create request omits a required field.
var ErrMissingFields = errors.New("missing required fields")

// Service defines manufacturing record logic.
type Service interface {
	// CreateDetails validates and inserts the 1:1 manufacturing extension.
	// Production capacity and manufacturing license are required.
	CreateDetails(ctx context.Context, businessID int64, in DetailsInput) (*Details, error)
	UpdateDetails(ctx context.Context, businessID int64, in DetailsInput) (*Details, error)
	// DetailsForBusiness satisfies the business module's DetailsSource.
	DetailsForBusiness(ctx context.Context, businessID int64) (interface{}, error)

	AddBatch(ctx context.Context, b *Batch) error
	ListBatches(ctx context.Context, businessID int64) ([]*Batch, error)
	AddPackaging(ctx context.Context, p *PackagingCompliance) error
	ListPackaging(ctx context.Context, businessID int64) ([]*PackagingCompliance, error)
	AddSupplier(ctx context.Context, s *Supplier) error
	ListSuppliers(ctx context.Context, businessID int64) ([]*Supplier, error)
}

type service struct{ repo Repository }

// NewService creates a new manufacturing service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) CreateDetails(ctx context.Context, businessID int64, in DetailsInput) (*Details, error) {
	if businessID <= 0 || in.ProductionCapacity == "" || in.ManufacturingLicense == "" {
		return nil, ErrMissingFields
	}

	d := &Details{
		BusinessID:           businessID,
		ProductionCapacity:   in.ProductionCapacity,
		ManufacturingLicense: in.ManufacturingLicense,
		ISOCertification:     in.ISOCertification,
		HACCPCertification:   in.HACCPCertification,
		Description:          in.Description,
	}
	if err := s.repo.CreateDetails(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) UpdateDetails(ctx context.Context, businessID int64, in DetailsInput) (*Details, error) {
	if businessID <= 0 || in.ProductionCapacity == "" || in.ManufacturingLicense == "" {
		return nil, ErrMissingFields
	}

	d, err := s.repo.GetDetailsByBusiness(ctx, businessID)
	if err != nil {
		return nil, err
	}
	d.ProductionCapacity = in.ProductionCapacity
	d.ManufacturingLicense = in.ManufacturingLicense
	d.ISOCertification = in.ISOCertification
	d.HACCPCertification = in.HACCPCertification
	d.Description = in.Description
	if err := s.repo.UpdateDetails(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) DetailsForBusiness(ctx context.Context, businessID int64) (interface{}, error) {
	return s.repo.GetDetailsByBusiness(ctx, businessID)
}

func (s *service) AddBatch(ctx context.Context, b *Batch) error {
	if b.BusinessID <= 0 || b.BatchNumber == "" || b.ManufacturingDate == "" || b.ExpiryDate == "" {
		return ErrMissingFields
	}
	return s.repo.CreateBatch(ctx, b)
}

func (s *service) ListBatches(ctx context.Context, businessID int64) ([]*Batch, error) {
	return s.repo.ListBatches(ctx, businessID)
}

func (s *service) AddPackaging(ctx context.Context, p *PackagingCompliance) error {
	if p.BusinessID <= 0 || p.MaterialType == "" {
		return ErrMissingFields
	}
	return s.repo.CreatePackaging(ctx, p)
}

func (s *service) ListPackaging(ctx context.Context, businessID int64) ([]*PackagingCompliance, error) {
	return s.repo.ListPackaging(ctx, businessID)
}

func (s *service) AddSupplier(ctx context.Context, sup *Supplier) error {
	if sup.BusinessID <= 0 || sup.SupplierName == "" {
		return ErrMissingFields
	}
	return s.repo.CreateSupplier(ctx, sup)
}

func (s *service) ListSuppliers(ctx context.Context, businessID int64) ([]*Supplier, error) {
	return s.repo.ListSuppliers(ctx, businessID)
}
