package certification

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL certification repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, c *Certification) error {
	query := `
		INSERT INTO certifications (business_id, certification_type, number, valid_from, valid_to, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		c.BusinessID, c.CertificationType, c.Number, c.ValidFrom, c.ValidTo, c.Status).
		Scan(&c.ID, &c.CreatedAt)
}

func (r *postgresRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*Certification, error) {
	query := `
		SELECT id, business_id, certification_type, number, valid_from, valid_to, status, created_at
		FROM certifications
		WHERE business_id = $1
		ORDER BY certification_type ASC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := []*Certification{}
	for rows.Next() {
		c := &Certification{}
		if err := rows.Scan(&c.ID, &c.BusinessID, &c.CertificationType, &c.Number,
			&c.ValidFrom, &c.ValidTo, &c.Status, &c.CreatedAt); err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}
