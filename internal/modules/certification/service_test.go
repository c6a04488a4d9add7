package certification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	CreateFunc func(ctx context.Context, c *Certification) error

	rows []*Certification
}

func (f *fakeRepo) Create(ctx context.Context, c *Certification) error {
	if f.CreateFunc != nil {
		if err := f.CreateFunc(ctx, c); err != nil {
			return err
		}
	}
	c.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, c)
	return nil
}

func (f *fakeRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*Certification, error) {
	return f.rows, nil
}

func TestCreate_ForcesActiveStatus(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	certs, err := svc.Create(context.Background(), CreateRequest{
		BusinessID:        42,
		CertificationType: "HACCP",
		Number:            "CERT-100",
		ValidFrom:         "2025-01-01",
		ValidTo:           "2026-01-01",
	})

	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.Equal(t, StatusActive, certs[0].Status)
}

func TestCreate_MissingFields(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{BusinessID: 42, Number: "CERT-100"})

	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, repo.rows)
}

func TestCreate_ReturnsFullList(t *testing.T) {
	repo := &fakeRepo{rows: []*Certification{{ID: 1, BusinessID: 42, CertificationType: "ISO 22000"}}}
	svc := NewService(repo)

	certs, err := svc.Create(context.Background(), CreateRequest{
		BusinessID:        42,
		CertificationType: "HACCP",
		Number:            "CERT-100",
		ValidFrom:         "2025-01-01",
		ValidTo:           "2026-01-01",
	})

	require.NoError(t, err)
	assert.Len(t, certs, 2)
}
