package account

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type service struct {
	repo Repository
}

// NewService creates a new account service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, phone, email, password string, role Role) (*Account, error) {
	if name == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := &Account{
		ID:           uuid.New(),
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *service) GetAccount(ctx context.Context, id string) (*Account, error) {
	return s.repo.GetByID(ctx, id)
}
