package review

import "context"

// Repository defines read access to reviews and hygiene ratings.
type Repository interface {
	ListReviews(ctx context.Context, businessID int64) ([]*Review, error)
	ListHygieneRatings(ctx context.Context, businessID int64) ([]*HygieneRating, error)
}
