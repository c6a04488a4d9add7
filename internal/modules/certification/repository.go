package certification

import "context"

// Repository defines certification storage.
type Repository interface {
	Create(ctx context.Context, c *Certification) error
	// ListByBusiness returns all certifications for a business ordered by
	// certification_type ascending.
	ListByBusiness(ctx context.Context, businessID int64) ([]*Certification, error)
}
