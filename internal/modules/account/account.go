package account

import (
	"time"

	"github.com/google/uuid"
)

// Role separates the two password-authenticated user populations.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleOfficer  Role = "officer"
)

// Account is a consumer or regulatory-officer login.
type Account struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
