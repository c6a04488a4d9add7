package facility

import "time"

// Photo documents one area of a business facility.
type Photo struct {
	ID          int64     `json:"id"`
	BusinessID  int64     `json:"business_id"`
	Location    string    `json:"location"`
	PhotoURL    string    `json:"photo_url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
