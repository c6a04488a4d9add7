package labreport

import (
	"context"
	"errors"
)

// ErrMissingFields is returned when a create request omits a required field.
var ErrMissingFields = errors.New("missing required fields")

// ErrInvalidStatus is returned when the submitted status is not Pass, Fail or Pending.
var ErrInvalidStatus = errors.New("invalid status")

// Service defines lab report business logic.
type Service interface {
	// Create inserts a report and returns the full updated list for the business.
	Create(ctx context.Context, req CreateRequest) ([]*LabReport, error)
	List(ctx context.Context, businessID int64) ([]*LabReport, error)
}

type service struct{ repo Repository }

// NewService creates a new lab report service.
func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, req CreateRequest) ([]*LabReport, error) {
	if req.BusinessID <= 0 || req.TestType == "" || req.ReportDate == "" {
		return nil, ErrMissingFields
	}

	status := req.Status
	switch status {
	case "":
		status = StatusPending
	case StatusPass, StatusFail, StatusPending:
	default:
		return nil, ErrInvalidStatus
	}

	lr := &LabReport{
		BusinessID: req.BusinessID,
		TestType:   req.TestType,
		ReportDate: req.ReportDate,
		Result:     req.Result,
		Notes:      req.Notes,
		Status:     status,
		ReportURL:  req.ReportURL,
	}
	if err := s.repo.Create(ctx, lr); err != nil {
		return nil, err
	}

	return s.repo.ListByBusiness(ctx, req.BusinessID)
}

func (s *service) List(ctx context.Context, businessID int64) ([]*LabReport, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}
