package team

import "time"

// Member is a staff member displayed on a business profile.
type Member struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	Name       string    `json:"name"`
	Role       string    `json:"role"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateRequest is the dashboard form payload. Creates carry no dedup key;
// submitting the same payload twice produces two rows.
type CreateRequest struct {
	BusinessID int64  `json:"business_id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	PhotoURL   string `json:"photo_url"`
}
