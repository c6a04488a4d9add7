package client

// Business is a business profile as served by the gateway.
type Business struct {
	ID             int64       `json:"id"`
	Name           string      `json:"name"`
	Address        string      `json:"address,omitempty"`
	Phone          string      `json:"phone"`
	Email          string      `json:"email,omitempty"`
	LicenseNumber  string      `json:"license_number"`
	BusinessType   string      `json:"business_type"`
	OwnerName      string      `json:"owner_name,omitempty"`
	OwnerPhotoURL  string      `json:"owner_photo_url,omitempty"`
	LogoURL        string      `json:"logo_url,omitempty"`
	Manufacturing  interface{} `json:"manufacturing_details,omitempty"`
}

// BusinessSession is the login/registration payload.
type BusinessSession struct {
	Token        string    `json:"token"`
	BusinessID   int64     `json:"businessId"`
	BusinessType string    `json:"businessType"`
	Business     *Business `json:"business,omitempty"`
}

// Certification mirrors the gateway's certification rows.
type Certification struct {
	ID                int64  `json:"id"`
	BusinessID        int64  `json:"business_id"`
	CertificationType string `json:"certification_type"`
	Number            string `json:"number"`
	ValidFrom         string `json:"valid_from"`
	ValidTo           string `json:"valid_to"`
	Status            string `json:"status"`
}

// CertificationInput is the create payload.
type CertificationInput struct {
	BusinessID        int64  `json:"business_id"`
	CertificationType string `json:"certification_type"`
	Number            string `json:"number"`
	ValidFrom         string `json:"valid_from"`
	ValidTo           string `json:"valid_to"`
}

// LabReport mirrors the gateway's lab report rows.
type LabReport struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"business_id"`
	TestType   string `json:"test_type"`
	ReportDate string `json:"report_date"`
	Result     string `json:"result,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Status     string `json:"status"`
	ReportURL  string `json:"report_url,omitempty"`
}

// LabReportInput is the create payload.
type LabReportInput struct {
	BusinessID int64  `json:"business_id"`
	TestType   string `json:"test_type"`
	ReportDate string `json:"report_date"`
	Result     string `json:"result,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Status     string `json:"status,omitempty"`
	ReportURL  string `json:"report_url,omitempty"`
}

// TeamMember mirrors the gateway's team member rows.
type TeamMember struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"business_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

// TeamMemberInput is the create payload. There is no dedup key: submitting
// the same payload twice creates two rows.
type TeamMemberInput struct {
	BusinessID int64  `json:"business_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	PhotoURL   string `json:"photo_url,omitempty"`
}

// FacilityPhoto mirrors the gateway's facility photo rows.
type FacilityPhoto struct {
	ID          int64  `json:"id"`
	BusinessID  int64  `json:"business_id"`
	Location    string `json:"location"`
	PhotoURL    string `json:"photo_url"`
	Description string `json:"description,omitempty"`
}

// Review mirrors the gateway's review rows.
type Review struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"business_id"`
	Reviewer   string `json:"reviewer,omitempty"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
}

// HygieneRating mirrors the gateway's hygiene rating rows.
type HygieneRating struct {
	ID         int64 `json:"id"`
	BusinessID int64 `json:"business_id"`
	Rating     int   `json:"rating"`
}

// UpdateBusinessInput is the dashboard edit payload. Empty fields are left
// unchanged.
type UpdateBusinessInput struct {
	Name          string `json:"name,omitempty"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
}
