package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/foodsafe/foodsafe-backend/internal/modules/account"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials hides whether the phone, license or type failed to match.
var ErrInvalidCredentials = errors.New("invalid credentials")

const tokenTTL = 24 * time.Hour

type service struct {
	businessRepo    business.Repository
	businessService business.Service
	accountRepo     account.Repository
	jwtKey          []byte
}

// NewService creates a new auth service.
func NewService(businessRepo business.Repository, businessService business.Service, accountRepo account.Repository, jwtKey []byte) Service {
	return &service{
		businessRepo:    businessRepo,
		businessService: businessService,
		accountRepo:     accountRepo,
		jwtKey:          jwtKey,
	}
}

func (s *service) LoginBusiness(ctx context.Context, phoneNumber, licenseNumber, businessType string) (*BusinessSession, error) {
	b, err := s.businessRepo.GetByCredentials(ctx, phoneNumber, licenseNumber, business.BusinessType(businessType))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.sign(strconv.FormatInt(b.ID, 10), "business")
	if err != nil {
		return nil, err
	}

	return &BusinessSession{Token: token, BusinessID: b.ID, BusinessType: b.BusinessType}, nil
}

func (s *service) RegisterBusiness(ctx context.Context, req business.RegisterRequest) (*BusinessSession, error) {
	b, err := s.businessService.Register(ctx, req)
	if err != nil {
		return nil, err
	}

	token, err := s.sign(strconv.FormatInt(b.ID, 10), "business")
	if err != nil {
		return nil, err
	}

	return &BusinessSession{Token: token, BusinessID: b.ID, BusinessType: b.BusinessType, Business: b}, nil
}

func (s *service) LoginAccount(ctx context.Context, email, password string) (string, *account.Account, error) {
	a, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.sign(a.ID.String(), string(a.Role))
	if err != nil {
		return "", nil, err
	}

	return token, a, nil
}

func (s *service) VerifyToken(tokenString string) (string, string, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return "", "", errors.New("invalid token")
	}
	return claims.Subject, claims.Audience, nil
}

func (s *service) sign(subject, role string) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   subject,
		Audience:  role,
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
