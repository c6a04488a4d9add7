package team

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL team member repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, m *Member) error {
	query := `
		INSERT INTO team_members (business_id, name, role, photo_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, m.BusinessID, m.Name, m.Role, m.PhotoURL).
		Scan(&m.ID, &m.CreatedAt)
}

func (r *postgresRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*Member, error) {
	query := `
		SELECT id, business_id, name, role, COALESCE(photo_url, ''), created_at
		FROM team_members
		WHERE business_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*Member{}
	for rows.Next() {
		m := &Member{}
		if err := rows.Scan(&m.ID, &m.BusinessID, &m.Name, &m.Role, &m.PhotoURL, &m.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
