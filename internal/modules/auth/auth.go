package auth

import (
	"context"

	"github.com/foodsafe/foodsafe-backend/internal/modules/account"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
)

// Service defines the interface for authentication-related business logic.
type Service interface {
	// LoginBusiness authenticates a business by its registered phone, license
	// number and type, and issues a session token on a single-row match.
	LoginBusiness(ctx context.Context, phoneNumber, licenseNumber, businessType string) (*BusinessSession, error)
	// RegisterBusiness creates the minimal business record and issues a token.
	RegisterBusiness(ctx context.Context, req business.RegisterRequest) (*BusinessSession, error)
	// LoginAccount authenticates a consumer or officer by email and password.
	LoginAccount(ctx context.Context, email, password string) (string, *account.Account, error)
	// VerifyToken parses a bearer token and returns its subject and role.
	VerifyToken(token string) (subject, role string, err error)
}

// BusinessSession is the payload handed back after business login/registration.
type BusinessSession struct {
	Token        string                `json:"token"`
	BusinessID   int64                 `json:"businessId"`
	BusinessType business.BusinessType `json:"businessType"`
	Business     *business.Business    `json:"business,omitempty"`
}
