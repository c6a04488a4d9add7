package certification

import "time"

// Status of a certification. Set to Active at creation and never recomputed;
// there is no expiry sweep.
type Status string

const (
	StatusActive  Status = "Active"
	StatusExpired Status = "Expired"
)

// Certification is a compliance certificate held by a business.
type Certification struct {
	ID                int64     `json:"id"`
	BusinessID        int64     `json:"business_id"`
	CertificationType string    `json:"certification_type"`
	Number            string    `json:"number"`
	ValidFrom         string    `json:"valid_from"`
	ValidTo           string    `json:"valid_to"`
	Status            Status    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateRequest is the dashboard form payload.
type CreateRequest struct {
	BusinessID        int64  `json:"business_id"`
	CertificationType string `json:"certification_type"`
	Number            string `json:"number"`
	ValidFrom         string `json:"valid_from"`
	ValidTo           string `json:"valid_to"`
}
