package labreport

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL lab report repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Create(ctx context.Context, lr *LabReport) error {
	query := `
		INSERT INTO lab_reports (business_id, test_type, report_date, result, notes, status, report_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		lr.BusinessID, lr.TestType, lr.ReportDate, lr.Result, lr.Notes, lr.Status, lr.ReportURL).
		Scan(&lr.ID, &lr.CreatedAt)
}

func (r *postgresRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*LabReport, error) {
	query := `
		SELECT id, business_id, test_type, report_date, COALESCE(result, ''),
		       COALESCE(notes, ''), status, COALESCE(report_url, ''), created_at
		FROM lab_reports
		WHERE business_id = $1
		ORDER BY report_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reports := []*LabReport{}
	for rows.Next() {
		lr := &LabReport{}
		if err := rows.Scan(&lr.ID, &lr.BusinessID, &lr.TestType, &lr.ReportDate,
			&lr.Result, &lr.Notes, &lr.Status, &lr.ReportURL, &lr.CreatedAt); err != nil {
			return nil, err
		}
		reports = append(reports, lr)
	}
	return reports, rows.Err()
}
