package client

import (
	"context"
	"fmt"
	"net/http"
)

// LoginBusiness authenticates with phone, license number and business type.
// The session is written only after the gateway reports success.
func (c *Client) LoginBusiness(ctx context.Context, phoneNumber, licenseNumber, businessType string) (*BusinessSession, error) {
	if phoneNumber == "" || licenseNumber == "" || businessType == "" {
		return nil, fmt.Errorf("phone number, license number, and business type are required")
	}

	body := map[string]string{
		"phoneNumber":   phoneNumber,
		"licenseNumber": licenseNumber,
		"businessType":  businessType,
	}
	var session BusinessSession
	if err := c.do(ctx, http.MethodPost, "/api/business/login", body, &session, "login failed"); err != nil {
		return nil, err
	}

	c.Session.SetAuth(session.Token, session.BusinessID, session.BusinessType)
	return &session, nil
}

// RegisterBusiness creates the minimal business record. On success the
// returned token and id are persisted to the session.
func (c *Client) RegisterBusiness(ctx context.Context, businessName, phoneNumber, licenseNumber, businessType string) (*BusinessSession, error) {
	body := map[string]string{
		"businessName":  businessName,
		"phoneNumber":   phoneNumber,
		"licenseNumber": licenseNumber,
		"businessType":  businessType,
	}
	var session BusinessSession
	if err := c.do(ctx, http.MethodPost, "/api/business/register", body, &session, "registration failed"); err != nil {
		return nil, err
	}

	c.Session.SetAuth(session.Token, session.BusinessID, session.BusinessType)
	return &session, nil
}

// GetBusiness fetches one business profile, joined with manufacturing
// details for manufacturers.
func (c *Client) GetBusiness(ctx context.Context, businessID int64) (*Business, error) {
	var b Business
	path := fmt.Sprintf("/api/business/%d", businessID)
	if err := c.do(ctx, http.MethodGet, path, nil, &b, "failed to fetch business details"); err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBusiness edits the profile fields exposed on the dashboard.
func (c *Client) UpdateBusiness(ctx context.Context, businessID int64, in UpdateBusinessInput) (*Business, error) {
	var b Business
	path := fmt.Sprintf("/api/business/%d", businessID)
	if err := c.do(ctx, http.MethodPut, path, in, &b, "failed to update business"); err != nil {
		return nil, err
	}
	return &b, nil
}
