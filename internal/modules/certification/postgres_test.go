package certification

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO certifications").
		WithArgs(int64(42), "HACCP", "CERT-100", "2025-01-01", "2026-01-01", StatusActive).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

	repo := NewPostgresRepository(db)
	c := &Certification{
		BusinessID:        42,
		CertificationType: "HACCP",
		Number:            "CERT-100",
		ValidFrom:         "2025-01-01",
		ValidTo:           "2026-01-01",
		Status:            StatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), c))

	assert.Equal(t, int64(1), c.ID)
	assert.Equal(t, created, c.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListByBusiness(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "business_id", "certification_type", "number", "valid_from", "valid_to", "status", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM certifications").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), int64(42), "HACCP", "CERT-100", "2025-01-01", "2026-01-01", "Active", time.Now()).
			AddRow(int64(1), int64(42), "ISO 22000", "CERT-050", "2024-06-01", "2025-06-01", "Active", time.Now()))

	repo := NewPostgresRepository(db)
	certs, err := repo.ListByBusiness(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Equal(t, "HACCP", certs[0].CertificationType)
	assert.Equal(t, "ISO 22000", certs[1].CertificationType)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListByBusiness_EmptySlice(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "business_id", "certification_type", "number", "valid_from", "valid_to", "status", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM certifications").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(cols))

	repo := NewPostgresRepository(db)
	certs, err := repo.ListByBusiness(context.Background(), 99)

	require.NoError(t, err)
	assert.NotNil(t, certs)
	assert.Empty(t, certs)
}
