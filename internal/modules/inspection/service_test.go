package inspection

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	inspections []*Inspection
	actions     []*ComplianceAction

	statusUpdates []InspectionStatus
}

func (f *fakeRepo) CreateInspection(ctx context.Context, i *Inspection) error {
	i.ID = int64(len(f.inspections) + 1)
	f.inspections = append(f.inspections, i)
	return nil
}
func (f *fakeRepo) ListInspections(ctx context.Context, businessID int64) ([]*Inspection, error) {
	return f.inspections, nil
}
func (f *fakeRepo) UpdateInspectionStatus(ctx context.Context, id int64, status InspectionStatus, rating int, comments string) error {
	f.statusUpdates = append(f.statusUpdates, status)
	return nil
}
func (f *fakeRepo) CreateAction(ctx context.Context, a *ComplianceAction) error {
	a.ID = int64(len(f.actions) + 1)
	f.actions = append(f.actions, a)
	return nil
}
func (f *fakeRepo) ListActions(ctx context.Context, businessID int64) ([]*ComplianceAction, error) {
	return f.actions, nil
}
func (f *fakeRepo) ResolveAction(ctx context.Context, id int64) error { return nil }

func TestSchedule(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	i, err := svc.Schedule(context.Background(), 42, uuid.New(), "2026-09-15")

	require.NoError(t, err)
	assert.Equal(t, StatusScheduled, i.Status)
	assert.Equal(t, int64(42), i.BusinessID)
	require.Len(t, repo.inspections, 1)
}

func TestSchedule_RequiresOfficer(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Schedule(context.Background(), 42, uuid.Nil, "2026-09-15")

	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, repo.inspections)
}

func TestCompleteAndCancel(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.Complete(context.Background(), 1, 4, "minor issues"))
	require.NoError(t, svc.Cancel(context.Background(), 2))

	require.Len(t, repo.statusUpdates, 2)
	assert.Equal(t, StatusCompleted, repo.statusUpdates[0])
	assert.Equal(t, StatusCancelled, repo.statusUpdates[1])
}

func TestIssueAction_ForcesOpenStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	a := &ComplianceAction{
		BusinessID: 42,
		OfficerID:  uuid.New(),
		ActionType: "warning",
		Status:     ActionResolved,
	}
	require.NoError(t, svc.IssueAction(context.Background(), a))

	assert.Equal(t, ActionOpen, a.Status)
	require.Len(t, repo.actions, 1)
}

func TestIssueAction_MissingFields(t *testing.T) {
	svc := NewService(&fakeRepo{})

	err := svc.IssueAction(context.Background(), &ComplianceAction{BusinessID: 42})

	assert.ErrorIs(t, err, ErrMissingFields)
}
