package business

import (
	"fmt"
	"strconv"
	"time"
)

// BusinessType distinguishes the two onboarding tracks.
type BusinessType string

const (
	TypeRestaurant   BusinessType = "restaurant"
	TypeManufacturer BusinessType = "manufacturer"
)

// Business is the identity and compliance profile of a registered food business.
type Business struct {
	ID             int64        `json:"id"`
	Name           string       `json:"name"`
	Address        string       `json:"address,omitempty"`
	Phone          string       `json:"phone"`
	Email          string       `json:"email,omitempty"`
	LicenseNumber  string       `json:"license_number"`
	BusinessType   BusinessType `json:"business_type"`
	OwnerName      string       `json:"owner_name,omitempty"`
	OwnerPhotoURL  string       `json:"owner_photo_url,omitempty"`
	LogoURL        string       `json:"logo_url,omitempty"`
	TradeLicense   string       `json:"trade_license,omitempty"`
	GSTNumber      string       `json:"gst_number,omitempty"`
	FireSafetyCert string       `json:"fire_safety_cert,omitempty"`
	LiquorLicense  *string      `json:"liquor_license,omitempty"`
	MusicLicense   *string      `json:"music_license,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`

	// Populated on GET when business_type is manufacturer.
	ManufacturingDetails interface{} `json:"manufacturing_details,omitempty"`
}

// ProfileUpdate carries the onboarding write against the business record.
type ProfileUpdate struct {
	Address       string `json:"address"`
	Email         string `json:"email"`
	OwnerName     string `json:"owner_name"`
	LicenseNumber string `json:"license_number"`
	LogoURL       string `json:"logo_url"`
	OwnerPhotoURL string `json:"owner_photo_url"`
}

// ParseID normalizes a business identifier received as a string. Malformed
// input fails fast instead of silently matching zero rows downstream.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid business id %q", raw)
	}
	return id, nil
}
