package onboarding

import (
	"io"

	"github.com/foodsafe/foodsafe-backend/internal/modules/facility"
	"github.com/foodsafe/foodsafe-backend/internal/modules/manufacturing"
	"github.com/foodsafe/foodsafe-backend/internal/modules/team"
)

// Stage tracks where a submission is in its lifecycle. Failed is reachable
// only from Validating, UploadingCoreAssets or UpdatingBusinessRecord;
// dependent processing is best-effort and always ends in Done.
type Stage string

const (
	StageIdle                   Stage = "Idle"
	StageValidating             Stage = "Validating"
	StageUploadingCoreAssets    Stage = "UploadingCoreAssets"
	StageUpdatingBusinessRecord Stage = "UpdatingBusinessRecord"
	StageProcessingDependents   Stage = "ProcessingDependents"
	StageDone                   Stage = "Done"
	StageFailed                 Stage = "Failed"
)

// FileInput is an uploaded file streamed from the multipart form. A nil
// FileInput means the field was not submitted.
type FileInput struct {
	Filename string
	Content  io.Reader
}

// TeamMemberInput is one team member row plus its photo.
type TeamMemberInput struct {
	Name  string
	Role  string
	Photo *FileInput
}

// FacilityPhotoInput is one facility photo plus its area name.
type FacilityPhotoInput struct {
	Location string
	Photo    *FileInput
}

// Submission is the full onboarding form for one business.
type Submission struct {
	BusinessID    int64
	Address       string
	Email         string
	OwnerName     string
	LicenseNumber string

	Logo       *FileInput
	OwnerPhoto *FileInput

	TeamMembers    []TeamMemberInput
	FacilityPhotos []FacilityPhotoInput

	// Set only for the manufacturing flow.
	Manufacturing *manufacturing.DetailsInput
}

// TeamMemberResult reports the outcome of one team member item. Failed items
// keep the submitted name and role so callers can see what was skipped.
type TeamMemberResult struct {
	OK     bool         `json:"ok"`
	Member *team.Member `json:"member,omitempty"`
	Error  string       `json:"error,omitempty"`
	Name   string       `json:"name"`
	Role   string       `json:"role"`
}

// FacilityPhotoResult reports the outcome of one facility photo item.
type FacilityPhotoResult struct {
	OK       bool            `json:"ok"`
	Photo    *facility.Photo `json:"photo,omitempty"`
	Error    string          `json:"error,omitempty"`
	Location string          `json:"location"`
}

// Result is the overall submission outcome. Success reflects only the core
// writes; per-item failures are listed, not fatal.
type Result struct {
	Success              bool                   `json:"success"`
	BusinessID           int64                  `json:"businessId"`
	Message              string                 `json:"message"`
	Stage                Stage                  `json:"stage"`
	TeamMembers          []TeamMemberResult     `json:"team_members,omitempty"`
	FacilityPhotos       []FacilityPhotoResult  `json:"facility_photos,omitempty"`
	ManufacturingDetails *manufacturing.Details `json:"manufacturing_details,omitempty"`
}
