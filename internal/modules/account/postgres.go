package account

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL account repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) Create(ctx context.Context, a *Account) error {
	query := `
		INSERT INTO accounts (id, name, phone, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Name, a.Phone, a.Email, a.PasswordHash, a.Role)
	return err
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Account, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return r.get(ctx, `WHERE id = $1`, parsedID)
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	return r.get(ctx, `WHERE email = $1`, email)
}

func (r *postgresRepository) get(ctx context.Context, where string, arg interface{}) (*Account, error) {
	a := &Account{}
	query := `
		SELECT id, name, phone, email, password_hash, role, created_at, updated_at
		FROM accounts
	` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&a.ID,
		&a.Name,
		&a.Phone,
		&a.Email,
		&a.PasswordHash,
		&a.Role,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}
