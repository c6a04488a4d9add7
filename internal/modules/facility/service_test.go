package facility

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	photos []*Photo
}

func (f *fakeRepo) Create(ctx context.Context, p *Photo) error {
	p.ID = int64(len(f.photos) + 1)
	f.photos = append(f.photos, p)
	return nil
}
func (f *fakeRepo) ListByBusiness(ctx context.Context, businessID int64) ([]*Photo, error) {
	return f.photos, nil
}

type fakeStore struct {
	UploadFunc func(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
	uploads    []string
}

func (f *fakeStore) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	f.uploads = append(f.uploads, objectPath)
	if f.UploadFunc != nil {
		return f.UploadFunc(ctx, objectPath, contentType, r)
	}
	return "https://files.example.com/" + objectPath, nil
}

func TestAddPhoto(t *testing.T) {
	repo := &fakeRepo{}
	store := &fakeStore{}
	svc := NewService(repo, store)

	p, err := svc.AddPhoto(context.Background(), 42, "Kitchen", "main prep area", "kitchen.jpg", strings.NewReader("img"))

	require.NoError(t, err)
	assert.Equal(t, "Kitchen", p.Location)
	assert.True(t, strings.HasPrefix(p.PhotoURL, "https://files.example.com/facility-photos/42/"))
	require.Len(t, store.uploads, 1)
	require.Len(t, repo.photos, 1)
}

func TestAddPhoto_UploadFailureSkipsInsert(t *testing.T) {
	repo := &fakeRepo{}
	store := &fakeStore{
		UploadFunc: func(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
			return "", errors.New("bucket unavailable")
		},
	}
	svc := NewService(repo, store)

	_, err := svc.AddPhoto(context.Background(), 42, "Kitchen", "", "kitchen.jpg", strings.NewReader("img"))

	require.Error(t, err)
	assert.Empty(t, repo.photos)
}

func TestAddPhoto_MissingLocation(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(&fakeRepo{}, store)

	_, err := svc.AddPhoto(context.Background(), 42, "", "", "kitchen.jpg", strings.NewReader("img"))

	assert.ErrorIs(t, err, ErrMissingFields)
	assert.Empty(t, store.uploads)
}
