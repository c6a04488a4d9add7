package facility

import (
	"context"
	"errors"
	"io"
	"mime"
	"path/filepath"

	"github.com/foodsafe/foodsafe-backend/internal/storage"
)

// ErrMissingFields is returned when a create request omits a required field.
var ErrMissingFields = errors.New("missing required fields")

// Service defines facility photo business logic.
type Service interface {
	// AddPhoto uploads the image to the bucket and inserts the row referencing
	// its public URL.
	AddPhoto(ctx context.Context, businessID int64, location, description, filename string, photo io.Reader) (*Photo, error)
	List(ctx context.Context, businessID int64) ([]*Photo, error)
}

type service struct {
	repo  Repository
	store storage.Store
}

// NewService creates a new facility photo service.
func NewService(repo Repository, store storage.Store) Service {
	return &service{repo: repo, store: store}
}

func (s *service) AddPhoto(ctx context.Context, businessID int64, location, description, filename string, photo io.Reader) (*Photo, error) {
	if businessID <= 0 || location == "" || photo == nil {
		return nil, ErrMissingFields
	}

	path := storage.ObjectPath(storage.CategoryFacilityPhotos, businessID, filename)
	contentType := mime.TypeByExtension(filepath.Ext(filename))
	url, err := s.store.Upload(ctx, path, contentType, photo)
	if err != nil {
		return nil, err
	}

	p := &Photo{
		BusinessID:  businessID,
		Location:    location,
		PhotoURL:    url,
		Description: description,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) List(ctx context.Context, businessID int64) ([]*Photo, error) {
	return s.repo.ListByBusiness(ctx, businessID)
}
