package onboarding

import (
	"context"
	"errors"
)

// ErrMissingBusinessID fails a submission before any upload or write happens.
var ErrMissingBusinessID = errors.New("business id is required")

// ErrMissingCoreAssets is returned by the restaurant flow when the logo or
// owner photo is absent; both are required there.
var ErrMissingCoreAssets = errors.New("business logo and owner photo are required")

// Service runs the multi-entity onboarding submission against a backend with
// no cross-table transaction. Ordering is the contract: required uploads,
// then the core writes, then best-effort dependents.
type Service interface {
	// Onboard runs the restaurant flow. Logo and owner photo are required.
	Onboard(ctx context.Context, sub Submission) (*Result, error)
	// OnboardManufacturing additionally inserts the manufacturing details as a
	// core write; logo and owner photo degrade to empty URLs when absent.
	OnboardManufacturing(ctx context.Context, sub Submission) (*Result, error)
}
