package manufacturing

import "context"

// Repository defines storage for manufacturing records.
type Repository interface {
	CreateDetails(ctx context.Context, d *Details) error
	GetDetailsByBusiness(ctx context.Context, businessID int64) (*Details, error)
	UpdateDetails(ctx context.Context, d *Details) error

	CreateBatch(ctx context.Context, b *Batch) error
	ListBatches(ctx context.Context, businessID int64) ([]*Batch, error)

	CreatePackaging(ctx context.Context, p *PackagingCompliance) error
	ListPackaging(ctx context.Context, businessID int64) ([]*PackagingCompliance, error)

	CreateSupplier(ctx context.Context, s *Supplier) error
	ListSuppliers(ctx context.Context, businessID int64) ([]*Supplier, error)
}
