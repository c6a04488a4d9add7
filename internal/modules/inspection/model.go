package inspection

import (
	"time"

	"github.com/google/uuid"
)

// InspectionStatus is the lifecycle state of a scheduled inspection.
type InspectionStatus string

const (
	StatusScheduled InspectionStatus = "Scheduled"
	StatusCompleted InspectionStatus = "Completed"
	StatusCancelled InspectionStatus = "Cancelled"
)

// ActionStatus is the lifecycle state of a compliance action.
type ActionStatus string

const (
	ActionOpen     ActionStatus = "Open"
	ActionResolved ActionStatus = "Resolved"
)

// Inspection is an officer visit scheduled against a business.
type Inspection struct {
	ID            int64            `json:"id"`
	BusinessID    int64            `json:"business_id"`
	OfficerID     uuid.UUID        `json:"officer_id"`
	ScheduledDate string           `json:"scheduled_date"`
	Status        InspectionStatus `json:"status"`
	Rating        int              `json:"rating,omitempty"`
	Comments      string           `json:"comments,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ComplianceAction is a corrective measure an officer issues to a business.
type ComplianceAction struct {
	ID          int64        `json:"id"`
	BusinessID  int64        `json:"business_id"`
	OfficerID   uuid.UUID    `json:"officer_id"`
	ActionType  string       `json:"action_type"`
	Description string       `json:"description,omitempty"`
	DueDate     string       `json:"due_date,omitempty"`
	Status      ActionStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
