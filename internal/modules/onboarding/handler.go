package onboarding

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/foodsafe/foodsafe-backend/internal/api"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
	"github.com/foodsafe/foodsafe-backend/internal/modules/manufacturing"
	"github.com/go-chi/chi/v5"
)

const maxFormBytes = 64 << 20

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the onboarding endpoints. The router is expected to
// carry bearer authentication already.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Post("/api/business/onboard", h.onboard)
	router.Post("/api/business/manufacturing/onboard", h.onboardManufacturing)
}

func (h *Handler) onboard(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.parseSubmission(w, r)
	if !ok {
		return
	}

	result, err := h.service.Onboard(r.Context(), sub)
	h.respond(w, result, err)
}

func (h *Handler) onboardManufacturing(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.parseSubmission(w, r)
	if !ok {
		return
	}

	raw := r.FormValue("manufacturing_details")
	if raw == "" {
		api.Fail(w, http.StatusBadRequest, "manufacturing details are required")
		return
	}
	var details manufacturing.DetailsInput
	if err := json.Unmarshal([]byte(raw), &details); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid manufacturing details format")
		return
	}
	if details.ProductionCapacity == "" || details.ManufacturingLicense == "" {
		api.Fail(w, http.StatusBadRequest, "production capacity and manufacturing license are required")
		return
	}
	sub.Manufacturing = &details

	result, err := h.service.OnboardManufacturing(r.Context(), sub)
	h.respond(w, result, err)
}

func (h *Handler) respond(w http.ResponseWriter, result *Result, err error) {
	if IsPrecondition(err) {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "failed to complete business setup")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) parseSubmission(w http.ResponseWriter, r *http.Request) (Submission, bool) {
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid multipart form")
		return Submission{}, false
	}

	rawID := r.FormValue("businessId")
	if rawID == "" {
		api.Fail(w, http.StatusBadRequest, "business ID is required")
		return Submission{}, false
	}
	businessID, err := business.ParseID(rawID)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, err.Error())
		return Submission{}, false
	}

	sub := Submission{
		BusinessID:    businessID,
		Address:       r.FormValue("address"),
		Email:         r.FormValue("email"),
		OwnerName:     r.FormValue("owner_name"),
		LicenseNumber: r.FormValue("license_number"),
		Logo:          formFile(r, "business_logo"),
		OwnerPhoto:    formFile(r, "owner_photo"),
	}

	names := splitList(r.FormValue("team_member_names"))
	roles := splitList(r.FormValue("team_member_roles"))
	memberPhotos := formFiles(r, "team_member_photos")
	for i, name := range names {
		in := TeamMemberInput{Name: name}
		if i < len(roles) {
			in.Role = roles[i]
		}
		if i < len(memberPhotos) {
			in.Photo = memberPhotos[i]
		}
		sub.TeamMembers = append(sub.TeamMembers, in)
	}

	areas := splitList(r.FormValue("facility_photo_area_names"))
	areaPhotos := formFiles(r, "facility_photos")
	for i, area := range areas {
		in := FacilityPhotoInput{Location: area}
		if i < len(areaPhotos) {
			in.Photo = areaPhotos[i]
		}
		sub.FacilityPhotos = append(sub.FacilityPhotos, in)
	}

	return sub, true
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

func formFile(r *http.Request, field string) *FileInput {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil
	}
	return &FileInput{Filename: header.Filename, Content: file}
}

func formFiles(r *http.Request, field string) []*FileInput {
	if r.MultipartForm == nil {
		return nil
	}
	headers := r.MultipartForm.File[field]
	files := make([]*FileInput, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			files = append(files, nil)
			continue
		}
		files = append(files, &FileInput{Filename: fh.Filename, Content: f})
	}
	return files
}
