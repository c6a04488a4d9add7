package inspection

import "context"

// Repository defines storage for inspections and compliance actions.
type Repository interface {
	CreateInspection(ctx context.Context, i *Inspection) error
	ListInspections(ctx context.Context, businessID int64) ([]*Inspection, error)
	UpdateInspectionStatus(ctx context.Context, id int64, status InspectionStatus, rating int, comments string) error

	CreateAction(ctx context.Context, a *ComplianceAction) error
	ListActions(ctx context.Context, businessID int64) ([]*ComplianceAction, error)
	ResolveAction(ctx context.Context, id int64) error
}
