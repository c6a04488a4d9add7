package labreport

import "context"

// Repository defines lab report storage.
type Repository interface {
	Create(ctx context.Context, r *LabReport) error
	// ListByBusiness returns all reports for a business, newest report_date first.
	ListByBusiness(ctx context.Context, businessID int64) ([]*LabReport, error)
}
