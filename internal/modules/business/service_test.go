package business

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	byID    map[int64]*Business
	updated []*Business
}

func (f *fakeRepo) Create(ctx context.Context, b *Business) error {
	b.ID = 1
	return nil
}
func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Business, error) {
	if b, ok := f.byID[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, ErrNotFound
}
func (f *fakeRepo) GetByCredentials(ctx context.Context, phone, licenseNumber string, businessType BusinessType) (*Business, error) {
	return nil, ErrNotFound
}
func (f *fakeRepo) Update(ctx context.Context, b *Business) error {
	f.updated = append(f.updated, b)
	return nil
}
func (f *fakeRepo) ApplyProfile(ctx context.Context, id int64, p ProfileUpdate) error { return nil }

func TestRegister_ValidatesType(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Register(context.Background(), RegisterRequest{
		BusinessName:  "Pearl Foods",
		PhoneNumber:   "0771234567",
		LicenseNumber: "LIC-2201",
		BusinessType:  "bakery",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownType)
	assert.Contains(t, err.Error(), "bakery")
}

func TestRegister_MissingFields(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.Register(context.Background(), RegisterRequest{BusinessName: "Pearl Foods"})

	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestUpdateBusiness_EmptyFieldsKeepValues(t *testing.T) {
	repo := &fakeRepo{byID: map[int64]*Business{
		42: {ID: 42, Name: "Pearl Foods", Phone: "0771234567", Address: "Old Lane", LicenseNumber: "LIC-2201"},
	}}
	svc := NewService(repo)

	b, err := svc.UpdateBusiness(context.Background(), 42, UpdateRequest{Address: "12 Harbour Road"})

	require.NoError(t, err)
	assert.Equal(t, "12 Harbour Road", b.Address)
	assert.Equal(t, "Pearl Foods", b.Name)
	assert.Equal(t, "0771234567", b.Phone)
	assert.Equal(t, "LIC-2201", b.LicenseNumber)
	require.Len(t, repo.updated, 1)
}

func TestUpdateBusiness_UnknownID(t *testing.T) {
	svc := NewService(&fakeRepo{})

	_, err := svc.UpdateBusiness(context.Background(), 999, UpdateRequest{Name: "New Name"})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"", "abc", "0", "-1", "4.2"} {
		_, err := ParseID(raw)
		assert.Error(t, err, "input %q", raw)
	}
}
