package facility

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL facility photo repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, p *Photo) error {
	query := `
		INSERT INTO facility_photos (business_id, location, photo_url, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, p.BusinessID, p.Location, p.PhotoURL, p.Description).
		Scan(&p.ID, &p.CreatedAt)
}

func (r *postgresRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*Photo, error) {
	query := `
		SELECT id, business_id, location, photo_url, COALESCE(description, ''), created_at
		FROM facility_photos
		WHERE business_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := []*Photo{}
	for rows.Next() {
		p := &Photo{}
		if err := rows.Scan(&p.ID, &p.BusinessID, &p.Location, &p.PhotoURL, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}
