package inspection

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrMissingFields is returned when a request omits a required field.
var ErrMissingFields = errors.New("missing required fields")

// Service defines officer inspection logic.
type Service interface {
	Schedule(ctx context.Context, businessID int64, officerID uuid.UUID, scheduledDate string) (*Inspection, error)
	ListForBusiness(ctx context.Context, businessID int64) ([]*Inspection, error)
	Complete(ctx context.Context, id int64, rating int, comments string) error
	Cancel(ctx context.Context, id int64) error

	IssueAction(ctx context.Context, a *ComplianceAction) error
	ListActions(ctx context.Context, businessID int64) ([]*ComplianceAction, error)
	ResolveAction(ctx context.Context, id int64) error
}

type service struct{ repo Repository }

// NewService creates a new inspection service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Schedule(ctx context.Context, businessID int64, officerID uuid.UUID, scheduledDate string) (*Inspection, error) {
	if businessID <= 0 || officerID == uuid.Nil || scheduledDate == "" {
		return nil, ErrMissingFields
	}

	i := &Inspection{
		BusinessID:    businessID,
		OfficerID:     officerID,
		ScheduledDate: scheduledDate,
		Status:        StatusScheduled,
	}
	if err := s.repo.CreateInspection(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) ListForBusiness(ctx context.Context, businessID int64) ([]*Inspection, error) {
	return s.repo.ListInspections(ctx, businessID)
}

func (s *service) Complete(ctx context.Context, id int64, rating int, comments string) error {
	return s.repo.UpdateInspectionStatus(ctx, id, StatusCompleted, rating, comments)
}

func (s *service) Cancel(ctx context.Context, id int64) error {
	return s.repo.UpdateInspectionStatus(ctx, id, StatusCancelled, 0, "")
}

func (s *service) IssueAction(ctx context.Context, a *ComplianceAction) error {
	if a.BusinessID <= 0 || a.OfficerID == uuid.Nil || a.ActionType == "" {
		return ErrMissingFields
	}
	a.Status = ActionOpen
	return s.repo.CreateAction(ctx, a)
}

func (s *service) ListActions(ctx context.Context, businessID int64) ([]*ComplianceAction, error) {
	return s.repo.ListActions(ctx, businessID)
}

func (s *service) ResolveAction(ctx context.Context, id int64) error {
	return s.repo.ResolveAction(ctx, id)
}
