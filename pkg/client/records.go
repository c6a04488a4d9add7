package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
)

// GetCertifications lists a business's certifications ordered by type.
func (c *Client) GetCertifications(ctx context.Context, businessID int64) ([]Certification, error) {
	var certs []Certification
	path := fmt.Sprintf("/api/business/certifications/%d", businessID)
	if err := c.do(ctx, http.MethodGet, path, nil, &certs, "failed to fetch certifications"); err != nil {
		return nil, err
	}
	return certs, nil
}

// CreateCertification adds a certification and returns the full updated list.
func (c *Client) CreateCertification(ctx context.Context, in CertificationInput) ([]Certification, error) {
	var certs []Certification
	if err := c.do(ctx, http.MethodPost, "/api/business/certifications", in, &certs, "failed to add certification"); err != nil {
		return nil, err
	}
	return certs, nil
}

// GetLabReports lists a business's lab reports newest-first.
func (c *Client) GetLabReports(ctx context.Context, businessID int64) ([]LabReport, error) {
	var reports []LabReport
	path := fmt.Sprintf("/api/business/lab-reports/%d", businessID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reports, "failed to fetch lab reports"); err != nil {
		return nil, err
	}
	return reports, nil
}

// CreateLabReport adds a lab report and returns the full updated list.
func (c *Client) CreateLabReport(ctx context.Context, in LabReportInput) ([]LabReport, error) {
	var reports []LabReport
	if err := c.do(ctx, http.MethodPost, "/api/business/lab-reports", in, &reports, "failed to add lab report"); err != nil {
		return nil, err
	}
	return reports, nil
}

// GetTeamMembers lists a business's team members newest-first.
func (c *Client) GetTeamMembers(ctx context.Context, businessID int64) ([]TeamMember, error) {
	var members []TeamMember
	path := fmt.Sprintf("/api/business/%d/team-members", businessID)
	if err := c.do(ctx, http.MethodGet, path, nil, &members, "failed to fetch team members"); err != nil {
		return nil, err
	}
	return members, nil
}

// CreateTeamMember adds a team member and returns the full updated list.
// Not idempotent: two identical calls create two rows.
func (c *Client) CreateTeamMember(ctx context.Context, in TeamMemberInput) ([]TeamMember, error) {
	var members []TeamMember
	if err := c.do(ctx, http.MethodPost, "/api/business/team-members", in, &members, "failed to add team member"); err != nil {
		return nil, err
	}
	return members, nil
}

// GetFacilityPhotos lists a business's facility photos.
func (c *Client) GetFacilityPhotos(ctx context.Context, businessID int64) ([]FacilityPhoto, error) {
	var photos []FacilityPhoto
	path := fmt.Sprintf("/api/business/facility-photos/%d", businessID)
	if err := c.do(ctx, http.MethodGet, path, nil, &photos, "failed to fetch facility photos"); err != nil {
		return nil, err
	}
	return photos, nil
}

// CreateFacilityPhoto uploads one facility photo and returns the created row.
func (c *Client) CreateFacilityPhoto(ctx context.Context, businessID int64, location, filename string, photo io.Reader) (*FacilityPhoto, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("business_id", strconv.FormatInt(businessID, 10)); err != nil {
		return nil, err
	}
	if err := mw.WriteField("location", location); err != nil {
		return nil, err
	}
	fw, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, photo); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/business/facility-photos", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token := c.Session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to add facility photo: %w", err)
	}
	defer resp.Body.Close()

	var p FacilityPhoto
	if err := c.decode(resp, &p, "failed to add facility photo"); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetReviews lists a business's reviews newest-first.
func (c *Client) GetReviews(ctx context.Context, businessID int64) ([]Review, error) {
	var reviews []Review
	path := fmt.Sprintf("/api/business/%d/reviews", businessID)
	if err := c.do(ctx, http.MethodGet, path, nil, &reviews, "failed to fetch reviews"); err != nil {
		return nil, err
	}
	return reviews, nil
}

// GetHygieneRatings lists a business's hygiene ratings newest-first.
func (c *Client) GetHygieneRatings(ctx context.Context, businessID int64) ([]HygieneRating, error) {
	var ratings []HygieneRating
	path := fmt.Sprintf("/api/business/%d/hygiene-ratings", businessID)
	if err := c.do(ctx, http.MethodGet, path, nil, &ratings, "failed to fetch hygiene ratings"); err != nil {
		return nil, err
	}
	return ratings, nil
}
