package review

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL review repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListReviews(ctx context.Context, businessID int64) ([]*Review, error) {
	query := `
		SELECT id, business_id, COALESCE(reviewer, ''), rating, COALESCE(comment, ''), created_at
		FROM reviews
		WHERE business_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*Review{}
	for rows.Next() {
		rv := &Review{}
		if err := rows.Scan(&rv.ID, &rv.BusinessID, &rv.Reviewer, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}

func (r *postgresRepo) ListHygieneRatings(ctx context.Context, businessID int64) ([]*HygieneRating, error) {
	query := `
		SELECT id, business_id, rating, created_at
		FROM hygiene_ratings
		WHERE business_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []*HygieneRating{}
	for rows.Next() {
		hr := &HygieneRating{}
		if err := rows.Scan(&hr.ID, &hr.BusinessID, &hr.Rating, &hr.CreatedAt); err != nil {
			return nil, err
		}
		ratings = append(ratings, hr)
	}
	return ratings, rows.Err()
}
