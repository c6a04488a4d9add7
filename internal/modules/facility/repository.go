package facility

import "context"

// Repository defines facility photo storage.
type Repository interface {
	Create(ctx context.Context, p *Photo) error
	ListByBusiness(ctx context.Context, businessID int64) ([]*Photo, error)
}
