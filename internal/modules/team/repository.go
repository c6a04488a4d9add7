package team

import "context"

// Repository defines team member storage.
type Repository interface {
	Create(ctx context.Context, m *Member) error
	// ListByBusiness returns all members for a business, newest first.
	ListByBusiness(ctx context.Context, businessID int64) ([]*Member, error)
}
