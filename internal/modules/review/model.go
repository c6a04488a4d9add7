package review

import "time"

// Review is consumer feedback on a business. Read-only from this service;
// rows are written by the consumer app.
type Review struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	Reviewer   string    `json:"reviewer,omitempty"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// HygieneRating is an officer-issued hygiene score. Read-only here.
type HygieneRating struct {
	ID         int64     `json:"id"`
	BusinessID int64     `json:"business_id"`
	Rating     int       `json:"rating"`
	CreatedAt  time.Time `json:"created_at"`
}
