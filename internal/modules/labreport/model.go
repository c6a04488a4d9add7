package labreport

import "time"

// Status of a lab report, fixed at submission.
type Status string

const (
	StatusPass    Status = "Pass"
	StatusFail    Status = "Fail"
	StatusPending Status = "Pending"
)

// LabReport is a laboratory test record attached to a business.
type LabReport struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	TestType   string    `json:"test_type"`
	ReportDate string    `json:"report_date"`
	Result     string    `json:"result,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Status     Status    `json:"status"`
	ReportURL  string    `json:"report_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateRequest is the dashboard form payload.
type CreateRequest struct {
	BusinessID int64  `json:"business_id"`
	TestType   string `json:"test_type"`
	ReportDate string `json:"report_date"`
	Result     string `json:"result"`
	Notes      string `json:"notes"`
	Status     Status `json:"status"`
	ReportURL  string `json:"report_url"`
}
