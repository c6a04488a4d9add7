package client

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onboardFile(name string) *FileUpload {
	return &FileUpload{Filename: name, Content: strings.NewReader("bytes")}
}

func TestOnboardBusiness_RequiresSession(t *testing.T) {
	calls := 0
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	_, err := c.OnboardBusiness(context.Background(), OnboardForm{Address: "12 Harbour Road"})

	require.Error(t, err)
	assert.Equal(t, "authentication credentials missing", err.Error())
	assert.Equal(t, 0, calls)
}

func TestOnboardBusiness_SubmitsMultipartForm(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/business/onboard", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Equal(t, "42", r.FormValue("businessId"))
		assert.Equal(t, "12 Harbour Road", r.FormValue("address"))
		assert.Equal(t, "R. Perera", r.FormValue("owner_name"))
		assert.Equal(t, "Amal,Nimal", r.FormValue("team_member_names"))
		assert.Equal(t, "Chef,Manager", r.FormValue("team_member_roles"))
		assert.Equal(t, "Kitchen", r.FormValue("facility_photo_area_names"))

		require.NotNil(t, r.MultipartForm)
		assert.Len(t, r.MultipartForm.File["business_logo"], 1)
		assert.Len(t, r.MultipartForm.File["owner_photo"], 1)
		assert.Len(t, r.MultipartForm.File["facility_photos"], 1)

		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"businessId": 42,
			"message":    "Business onboarded successfully",
			"stage":      "Done",
			"team_members": []map[string]interface{}{
				{"ok": true, "name": "Amal", "role": "Chef"},
				{"ok": true, "name": "Nimal", "role": "Manager"},
			},
		})
	})
	c.Session.SetAuth("jwt-token", 42, "restaurant")

	form := OnboardForm{
		Address:       "12 Harbour Road",
		Email:         "owner@pearl.example",
		OwnerName:     "R. Perera",
		LicenseNumber: "LIC-2201",
		Logo:          onboardFile("logo.png"),
		OwnerPhoto:    onboardFile("owner.jpg"),
		TeamMembers: []OnboardTeamMember{
			{Name: "Amal", Role: "Chef"},
			{Name: "Nimal", Role: "Manager"},
		},
		FacilityPhotos: []OnboardFacilityPhoto{
			{Location: "Kitchen", Photo: onboardFile("kitchen.jpg")},
		},
	}

	res, err := c.OnboardBusiness(context.Background(), form)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, int64(42), res.BusinessID)
	assert.Equal(t, "Done", res.Stage)
	require.Len(t, res.TeamMembers, 2)
	assert.True(t, res.TeamMembers[0].OK)
}

func TestOnboardBusiness_PartialItemFailuresStillSucceed(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"businessId": 42,
			"message":    "Business onboarded successfully",
			"stage":      "Done",
			"team_members": []map[string]interface{}{
				{"ok": true, "name": "Amal", "role": "Chef"},
				{"ok": false, "name": "Nimal", "role": "Manager", "error": "duplicate key"},
			},
		})
	})
	c.Session.SetAuth("jwt-token", 42, "restaurant")

	res, err := c.OnboardBusiness(context.Background(), OnboardForm{Address: "12 Harbour Road"})

	require.NoError(t, err)
	assert.True(t, res.Success)
	require.Len(t, res.TeamMembers, 2)
	assert.False(t, res.TeamMembers[1].OK)
	assert.Equal(t, "duplicate key", res.TeamMembers[1].Error)
}

func TestOnboardBusiness_FailureUsesPayloadError(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"stage":   "Failed",
			"error":   "failed to update business record",
		})
	})
	c.Session.SetAuth("jwt-token", 42, "restaurant")

	_, err := c.OnboardBusiness(context.Background(), OnboardForm{Address: "12 Harbour Road"})

	require.Error(t, err)
	assert.Equal(t, "failed to update business record", err.Error())
}

func TestOnboardBusiness_ReaffirmsSessionFromResponse(t *testing.T) {
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"businessId": 42,
			"message":    "Business onboarded successfully",
			"stage":      "Done",
		})
	})
	c.Session.SetAuth("jwt-token", 41, "restaurant")

	_, err := c.OnboardBusiness(context.Background(), OnboardForm{Address: "12 Harbour Road"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), c.Session.BusinessID())
	assert.Equal(t, "jwt-token", c.Session.Token())
}

func TestOnboardBusiness_ManufacturingRouting(t *testing.T) {
	var gotPath string
	var gotDetails map[string]string
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseMultipartForm(32<<20))
		require.NoError(t, json.Unmarshal([]byte(r.FormValue("manufacturing_details")), &gotDetails))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success":    true,
			"businessId": 7,
			"message":    "Business onboarded successfully",
			"stage":      "Done",
		})
	})
	c.Session.SetAuth("jwt-token", 7, "manufacturer")

	form := OnboardForm{
		Address: "Mill Lane",
		ManufacturingDetails: map[string]string{
			"production_capacity":   "500 units/day",
			"manufacturing_license": "MFG-7788",
		},
	}

	_, err := c.OnboardBusiness(context.Background(), form)

	require.NoError(t, err)
	assert.Equal(t, "/api/business/manufacturing/onboard", gotPath)
	assert.Equal(t, "MFG-7788", gotDetails["manufacturing_license"])
}
