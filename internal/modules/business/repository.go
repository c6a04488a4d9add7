package business

import "context"

// Repository defines business record storage.
type Repository interface {
	Create(ctx context.Context, b *Business) error
	GetByID(ctx context.Context, id int64) (*Business, error)
	// GetByCredentials asserts exactly one row matches; zero or multiple
	// matches return ErrNotFound.
	GetByCredentials(ctx context.Context, phone, licenseNumber string, businessType BusinessType) (*Business, error)
	Update(ctx context.Context, b *Business) error
	ApplyProfile(ctx context.Context, id int64, p ProfileUpdate) error
}
