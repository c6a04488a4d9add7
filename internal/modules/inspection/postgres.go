package inspection

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when an update targets a missing row.
var ErrNotFound = errors.New("record not found")

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL inspection repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateInspection(ctx context.Context, i *Inspection) error {
	query := `
		INSERT INTO inspections (business_id, officer_id, scheduled_date, status, rating, comments)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		i.BusinessID, i.OfficerID, i.ScheduledDate, i.Status, i.Rating, i.Comments).
		Scan(&i.ID, &i.CreatedAt)
}

func (r *postgresRepo) ListInspections(ctx context.Context, businessID int64) ([]*Inspection, error) {
	query := `
		SELECT id, business_id, officer_id, scheduled_date, status, COALESCE(rating, 0),
		       COALESCE(comments, ''), created_at
		FROM inspections
		WHERE business_id = $1
		ORDER BY scheduled_date DESC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inspections := []*Inspection{}
	for rows.Next() {
		i := &Inspection{}
		if err := rows.Scan(&i.ID, &i.BusinessID, &i.OfficerID, &i.ScheduledDate,
			&i.Status, &i.Rating, &i.Comments, &i.CreatedAt); err != nil {
			return nil, err
		}
		inspections = append(inspections, i)
	}
	return inspections, rows.Err()
}

func (r *postgresRepo) UpdateInspectionStatus(ctx context.Context, id int64, status InspectionStatus, rating int, comments string) error {
	query := `
		UPDATE inspections
		SET status = $1, rating = $2, comments = $3
		WHERE id = $4
	`
	res, err := r.db.ExecContext(ctx, query, status, rating, comments, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) CreateAction(ctx context.Context, a *ComplianceAction) error {
	query := `
		INSERT INTO compliance_actions (business_id, officer_id, action_type, description, due_date, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		a.BusinessID, a.OfficerID, a.ActionType, a.Description, a.DueDate, a.Status).
		Scan(&a.ID, &a.CreatedAt)
}

func (r *postgresRepo) ListActions(ctx context.Context, businessID int64) ([]*ComplianceAction, error) {
	query := `
		SELECT id, business_id, officer_id, action_type, COALESCE(description, ''),
		       COALESCE(due_date, ''), status, created_at
		FROM compliance_actions
		WHERE business_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actions := []*ComplianceAction{}
	for rows.Next() {
		a := &ComplianceAction{}
		if err := rows.Scan(&a.ID, &a.BusinessID, &a.OfficerID, &a.ActionType,
			&a.Description, &a.DueDate, &a.Status, &a.CreatedAt); err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

func (r *postgresRepo) ResolveAction(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE compliance_actions SET status = $1 WHERE id = $2`, ActionResolved, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
