package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// FileUpload is a file attached to the onboarding form.
type FileUpload struct {
	Filename string
	Content  io.Reader
}

// OnboardTeamMember is one team member on the onboarding form.
type OnboardTeamMember struct {
	Name  string
	Role  string
	Photo *FileUpload
}

// OnboardFacilityPhoto is one facility photo on the onboarding form.
type OnboardFacilityPhoto struct {
	Location string
	Photo    *FileUpload
}

// OnboardForm covers business profile fields, any number of team members and
// any number of facility photos.
type OnboardForm struct {
	Address       string
	Email         string
	OwnerName     string
	LicenseNumber string

	Logo       *FileUpload
	OwnerPhoto *FileUpload

	TeamMembers    []OnboardTeamMember
	FacilityPhotos []OnboardFacilityPhoto

	// ManufacturingDetails, when non-nil, routes the submission through the
	// manufacturing onboarding endpoint.
	ManufacturingDetails map[string]string
}

// OnboardItemResult reports one dependent item's outcome.
type OnboardItemResult struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`
	Location string `json:"location,omitempty"`
}

// OnboardResult is the submission outcome. Success reflects the core
// business-record writes only; dependent item failures are listed.
type OnboardResult struct {
	Success        bool                `json:"success"`
	BusinessID     int64               `json:"businessId"`
	Message        string              `json:"message"`
	Stage          string              `json:"stage"`
	TeamMembers    []OnboardItemResult `json:"team_members,omitempty"`
	FacilityPhotos []OnboardItemResult `json:"facility_photos,omitempty"`
	Error          string              `json:"error,omitempty"`
}

// OnboardBusiness submits the onboarding form. The session must hold a token
// and business id from a prior registration or login; without them the call
// fails before any network I/O.
func (c *Client) OnboardBusiness(ctx context.Context, form OnboardForm) (*OnboardResult, error) {
	token := c.Session.Token()
	businessID := c.Session.BusinessID()
	if token == "" || businessID == 0 {
		return nil, fmt.Errorf("authentication credentials missing")
	}

	body, contentType, err := encodeOnboardForm(businessID, form)
	if err != nil {
		return nil, err
	}

	path := "/api/business/onboard"
	if form.ManufacturingDetails != nil {
		path = "/api/business/manufacturing/onboard"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to complete business setup: %w", err)
	}
	defer resp.Body.Close()

	var result OnboardResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to complete business setup: status %d", resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !result.Success {
		if result.Error != "" {
			return nil, fmt.Errorf("%s", result.Error)
		}
		return nil, fmt.Errorf("failed to complete business setup")
	}

	// Re-affirm the session with the authoritative id from the response.
	c.Session.SetAuth(token, result.BusinessID, c.Session.BusinessType())
	return &result, nil
}

func encodeOnboardForm(businessID int64, form OnboardForm) (io.Reader, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"businessId":     strconv.FormatInt(businessID, 10),
		"address":        form.Address,
		"email":          form.Email,
		"owner_name":     form.OwnerName,
		"license_number": form.LicenseNumber,
	}

	var names, roles []string
	for _, m := range form.TeamMembers {
		names = append(names, m.Name)
		roles = append(roles, m.Role)
	}
	if len(names) > 0 {
		fields["team_member_names"] = strings.Join(names, ",")
		fields["team_member_roles"] = strings.Join(roles, ",")
	}

	var areas []string
	for _, p := range form.FacilityPhotos {
		areas = append(areas, p.Location)
	}
	if len(areas) > 0 {
		fields["facility_photo_area_names"] = strings.Join(areas, ",")
	}

	if form.ManufacturingDetails != nil {
		details, err := json.Marshal(form.ManufacturingDetails)
		if err != nil {
			return nil, "", err
		}
		fields["manufacturing_details"] = string(details)
	}

	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}

	if err := writeFile(mw, "business_logo", form.Logo); err != nil {
		return nil, "", err
	}
	if err := writeFile(mw, "owner_photo", form.OwnerPhoto); err != nil {
		return nil, "", err
	}
	for _, m := range form.TeamMembers {
		if err := writeFile(mw, "team_member_photos", m.Photo); err != nil {
			return nil, "", err
		}
	}
	for _, p := range form.FacilityPhotos {
		if err := writeFile(mw, "facility_photos", p.Photo); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", err
	}
	return &buf, mw.FormDataContentType(), nil
}

func writeFile(mw *multipart.Writer, field string, f *FileUpload) error {
	if f == nil {
		return nil
	}
	fw, err := mw.CreateFormFile(field, f.Filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(fw, f.Content)
	return err
}
