package business

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a lookup matches no business (or, for
// credential lookups, not exactly one).
var ErrNotFound = errors.New("business not found")

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL business repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const businessColumns = `
	id, name, COALESCE(address, ''), phone, COALESCE(email, ''), license_number,
	business_type, COALESCE(owner_name, ''), COALESCE(owner_photo_url, ''),
	COALESCE(logo_url, ''), COALESCE(trade_license, ''), COALESCE(gst_number, ''),
	COALESCE(fire_safety_cert, ''), liquor_license, music_license, created_at, updated_at
`

func (r *postgresRepo) Create(ctx context.Context, b *Business) error {
	query := `
		INSERT INTO businesses (name, phone, license_number, business_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, b.Name, b.Phone, b.LicenseNumber, b.BusinessType).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`
	b, err := scanBusiness(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return b, err
}

func (r *postgresRepo) GetByCredentials(ctx context.Context, phone, licenseNumber string, businessType BusinessType) (*Business, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+businessColumns+` FROM businesses
		 WHERE phone = $1 AND license_number = $2 AND business_type = $3`,
		phone, licenseNumber, businessType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []*Business
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(matches) != 1 {
		return nil, ErrNotFound
	}
	return matches[0], nil
}

func (r *postgresRepo) Update(ctx context.Context, b *Business) error {
	query := `
		UPDATE businesses
		SET name = $1, address = $2, phone = $3, email = $4, license_number = $5,
		    updated_at = NOW()
		WHERE id = $6
	`
	_, err := r.db.ExecContext(ctx, query, b.Name, b.Address, b.Phone, b.Email, b.LicenseNumber, b.ID)
	return err
}

func (r *postgresRepo) ApplyProfile(ctx context.Context, id int64, p ProfileUpdate) error {
	query := `
		UPDATE businesses
		SET address = $1, email = $2, owner_name = $3, license_number = $4,
		    logo_url = $5, owner_photo_url = $6, updated_at = NOW()
		WHERE id = $7
	`
	res, err := r.db.ExecContext(ctx, query,
		p.Address, p.Email, p.OwnerName, p.LicenseNumber, p.LogoURL, p.OwnerPhotoURL, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBusiness(row rowScanner) (*Business, error) {
	b := &Business{}
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.Address,
		&b.Phone,
		&b.Email,
		&b.LicenseNumber,
		&b.BusinessType,
		&b.OwnerName,
		&b.OwnerPhotoURL,
		&b.LogoURL,
		&b.TradeLicense,
		&b.GSTNumber,
		&b.FireSafetyCert,
		&b.LiquorLicense,
		&b.MusicLicense,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}
