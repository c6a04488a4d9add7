package onboarding

import (
	"context"
	"errors"
	"log"
	"mime"
	"path/filepath"
	"sync"

	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
	"github.com/foodsafe/foodsafe-backend/internal/modules/facility"
	"github.com/foodsafe/foodsafe-backend/internal/modules/manufacturing"
	"github.com/foodsafe/foodsafe-backend/internal/modules/team"
	"github.com/foodsafe/foodsafe-backend/internal/storage"
)

type service struct {
	businesses    business.Repository
	teamMembers   team.Repository
	photos        facility.Repository
	manufacturing manufacturing.Repository
	store         storage.Store
}

// NewService creates a new onboarding service.
func NewService(businesses business.Repository, teamMembers team.Repository, photos facility.Repository, mfg manufacturing.Repository, store storage.Store) Service {
	return &service{
		businesses:    businesses,
		teamMembers:   teamMembers,
		photos:        photos,
		manufacturing: mfg,
		store:         store,
	}
}

func (s *service) Onboard(ctx context.Context, sub Submission) (*Result, error) {
	return s.run(ctx, sub, true)
}

func (s *service) OnboardManufacturing(ctx context.Context, sub Submission) (*Result, error) {
	return s.run(ctx, sub, false)
}

func (s *service) run(ctx context.Context, sub Submission, coreAssetsRequired bool) (*Result, error) {
	res := &Result{BusinessID: sub.BusinessID, Stage: StageValidating}

	// Precondition: no network call of any kind before this passes.
	if sub.BusinessID <= 0 {
		res.Stage = StageFailed
		return res, ErrMissingBusinessID
	}
	if coreAssetsRequired && (sub.Logo == nil || sub.OwnerPhoto == nil) {
		res.Stage = StageFailed
		return res, ErrMissingCoreAssets
	}

	// Required uploads run concurrently; either failure aborts before any
	// database write. Absent optional files degrade to an empty URL.
	res.Stage = StageUploadingCoreAssets
	logoURL, ownerPhotoURL, err := s.uploadCoreAssets(ctx, sub)
	if err != nil {
		res.Stage = StageFailed
		return res, err
	}

	// The core writes: the one part of the submission that must succeed or
	// the whole attempt is reported failed.
	res.Stage = StageUpdatingBusinessRecord
	if sub.Manufacturing != nil {
		d := &manufacturing.Details{
			BusinessID:           sub.BusinessID,
			ProductionCapacity:   sub.Manufacturing.ProductionCapacity,
			ManufacturingLicense: sub.Manufacturing.ManufacturingLicense,
			ISOCertification:     sub.Manufacturing.ISOCertification,
			HACCPCertification:   sub.Manufacturing.HACCPCertification,
			Description:          sub.Manufacturing.Description,
		}
		if err := s.manufacturing.CreateDetails(ctx, d); err != nil {
			res.Stage = StageFailed
			return res, err
		}
		res.ManufacturingDetails = d
	}

	update := business.ProfileUpdate{
		Address:       sub.Address,
		Email:         sub.Email,
		OwnerName:     sub.OwnerName,
		LicenseNumber: sub.LicenseNumber,
		LogoURL:       logoURL,
		OwnerPhotoURL: ownerPhotoURL,
	}
	if err := s.businesses.ApplyProfile(ctx, sub.BusinessID, update); err != nil {
		res.Stage = StageFailed
		return res, err
	}

	// Dependents are enrichment records: each item is processed on its own
	// and a failure is recorded and skipped, never fatal.
	res.Stage = StageProcessingDependents
	res.TeamMembers = s.processTeamMembers(ctx, sub)
	res.FacilityPhotos = s.processFacilityPhotos(ctx, sub)

	res.Stage = StageDone
	res.Success = true
	res.Message = "Business onboarded successfully"
	return res, nil
}

func (s *service) uploadCoreAssets(ctx context.Context, sub Submission) (string, string, error) {
	var (
		wg                     sync.WaitGroup
		logoURL, ownerPhotoURL string
		logoErr, ownerErr      error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		logoURL, logoErr = s.uploadFile(ctx, storage.CategoryBusinessLogos, sub.BusinessID, sub.Logo)
	}()
	go func() {
		defer wg.Done()
		ownerPhotoURL, ownerErr = s.uploadFile(ctx, storage.CategoryOwnerPhotos, sub.BusinessID, sub.OwnerPhoto)
	}()
	wg.Wait()

	if logoErr != nil {
		return "", "", logoErr
	}
	if ownerErr != nil {
		return "", "", ownerErr
	}
	return logoURL, ownerPhotoURL, nil
}

// uploadFile returns an empty URL for an absent file; an upload error for a
// present file is the caller's to handle.
func (s *service) uploadFile(ctx context.Context, category string, businessID int64, f *FileInput) (string, error) {
	if f == nil {
		return "", nil
	}
	path := storage.ObjectPath(category, businessID, f.Filename)
	contentType := mime.TypeByExtension(filepath.Ext(f.Filename))
	return s.store.Upload(ctx, path, contentType, f.Content)
}

func (s *service) processTeamMembers(ctx context.Context, sub Submission) []TeamMemberResult {
	results := make([]TeamMemberResult, 0, len(sub.TeamMembers))
	for _, in := range sub.TeamMembers {
		if in.Name == "" {
			continue
		}

		item := TeamMemberResult{Name: in.Name, Role: in.Role}
		photoURL, err := s.uploadFile(ctx, storage.CategoryTeamMembers, sub.BusinessID, in.Photo)
		if err != nil {
			log.Printf("onboarding: team member %q photo upload failed: %v", in.Name, err)
			item.Error = err.Error()
			results = append(results, item)
			continue
		}

		m := &team.Member{
			BusinessID: sub.BusinessID,
			Name:       in.Name,
			Role:       in.Role,
			PhotoURL:   photoURL,
		}
		if err := s.teamMembers.Create(ctx, m); err != nil {
			log.Printf("onboarding: team member %q insert failed: %v", in.Name, err)
			item.Error = err.Error()
			results = append(results, item)
			continue
		}

		item.OK = true
		item.Member = m
		results = append(results, item)
	}
	return results
}

func (s *service) processFacilityPhotos(ctx context.Context, sub Submission) []FacilityPhotoResult {
	results := make([]FacilityPhotoResult, 0, len(sub.FacilityPhotos))
	for _, in := range sub.FacilityPhotos {
		if in.Location == "" {
			continue
		}

		item := FacilityPhotoResult{Location: in.Location}
		photoURL, err := s.uploadFile(ctx, storage.CategoryFacilityPhotos, sub.BusinessID, in.Photo)
		if err != nil {
			log.Printf("onboarding: facility photo %q upload failed: %v", in.Location, err)
			item.Error = err.Error()
			results = append(results, item)
			continue
		}

		p := &facility.Photo{
			BusinessID: sub.BusinessID,
			Location:   in.Location,
			PhotoURL:   photoURL,
		}
		if err := s.photos.Create(ctx, p); err != nil {
			log.Printf("onboarding: facility photo %q insert failed: %v", in.Location, err)
			item.Error = err.Error()
			results = append(results, item)
			continue
		}

		item.OK = true
		item.Photo = p
		results = append(results, item)
	}
	return results
}

// IsPrecondition reports whether an onboarding error was rejected before any
// I/O took place.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrMissingBusinessID) || errors.Is(err, ErrMissingCoreAssets)
}
