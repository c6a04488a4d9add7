package auth

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodsafe/foodsafe-backend/internal/modules/account"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
)

type fakeBusinessRepo struct {
	GetByCredentialsFunc func(ctx context.Context, phone, licenseNumber string, businessType business.BusinessType) (*business.Business, error)
}

func (f *fakeBusinessRepo) Create(ctx context.Context, b *business.Business) error { return nil }
func (f *fakeBusinessRepo) GetByID(ctx context.Context, id int64) (*business.Business, error) {
	return nil, business.ErrNotFound
}
func (f *fakeBusinessRepo) GetByCredentials(ctx context.Context, phone, licenseNumber string, businessType business.BusinessType) (*business.Business, error) {
	if f.GetByCredentialsFunc != nil {
		return f.GetByCredentialsFunc(ctx, phone, licenseNumber, businessType)
	}
	return nil, business.ErrNotFound
}
func (f *fakeBusinessRepo) Update(ctx context.Context, b *business.Business) error { return nil }
func (f *fakeBusinessRepo) ApplyProfile(ctx context.Context, id int64, p business.ProfileUpdate) error {
	return nil
}

type fakeBusinessService struct {
	RegisterFunc func(ctx context.Context, req business.RegisterRequest) (*business.Business, error)
}

func (f *fakeBusinessService) Register(ctx context.Context, req business.RegisterRequest) (*business.Business, error) {
	return f.RegisterFunc(ctx, req)
}
func (f *fakeBusinessService) GetBusiness(ctx context.Context, id int64) (*business.Business, error) {
	return nil, business.ErrNotFound
}
func (f *fakeBusinessService) UpdateBusiness(ctx context.Context, id int64, req business.UpdateRequest) (*business.Business, error) {
	return nil, business.ErrNotFound
}

type fakeAccountRepo struct {
	accounts map[string]*account.Account
}

func (f *fakeAccountRepo) Create(ctx context.Context, a *account.Account) error { return nil }
func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (*account.Account, error) {
	return nil, sql.ErrNoRows
}
func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if a, ok := f.accounts[email]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

var testKey = []byte("test-signing-key")

func TestLoginBusiness_IssuesVerifiableToken(t *testing.T) {
	repo := &fakeBusinessRepo{
		GetByCredentialsFunc: func(ctx context.Context, phone, licenseNumber string, businessType business.BusinessType) (*business.Business, error) {
			return &business.Business{ID: 42, BusinessType: business.TypeRestaurant}, nil
		},
	}
	svc := NewService(repo, nil, nil, testKey)

	session, err := svc.LoginBusiness(context.Background(), "0771234567", "LIC-2201", "restaurant")

	require.NoError(t, err)
	assert.Equal(t, int64(42), session.BusinessID)
	assert.Equal(t, business.TypeRestaurant, session.BusinessType)

	subject, role, err := svc.VerifyToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "42", subject)
	assert.Equal(t, "business", role)
}

func TestLoginBusiness_NoMatchHidesReason(t *testing.T) {
	svc := NewService(&fakeBusinessRepo{}, nil, nil, testKey)

	_, err := svc.LoginBusiness(context.Background(), "0771234567", "LIC-9999", "restaurant")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterBusiness_ReturnsTokenAndRecord(t *testing.T) {
	bs := &fakeBusinessService{
		RegisterFunc: func(ctx context.Context, req business.RegisterRequest) (*business.Business, error) {
			return &business.Business{ID: 7, Name: req.BusinessName, BusinessType: business.TypeManufacturer}, nil
		},
	}
	svc := NewService(&fakeBusinessRepo{}, bs, nil, testKey)

	session, err := svc.RegisterBusiness(context.Background(), business.RegisterRequest{
		BusinessName:  "Pearl Foods",
		PhoneNumber:   "0771234567",
		LicenseNumber: "LIC-7",
		BusinessType:  "manufacturer",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, int64(7), session.BusinessID)
	require.NotNil(t, session.Business)
	assert.Equal(t, "Pearl Foods", session.Business.Name)
}

func TestLoginAccount(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	id := uuid.New()
	repo := &fakeAccountRepo{accounts: map[string]*account.Account{
		"officer@gov.example": {ID: id, Email: "officer@gov.example", PasswordHash: string(hash), Role: account.RoleOfficer},
	}}
	svc := NewService(&fakeBusinessRepo{}, nil, repo, testKey)

	token, a, err := svc.LoginAccount(context.Background(), "officer@gov.example", "secret123")
	require.NoError(t, err)
	assert.Equal(t, account.RoleOfficer, a.Role)

	subject, role, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, id.String(), subject)
	assert.Equal(t, "officer", role)
}

func TestLoginAccount_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeAccountRepo{accounts: map[string]*account.Account{
		"user@example.com": {ID: uuid.New(), Email: "user@example.com", PasswordHash: string(hash), Role: account.RoleConsumer},
	}}
	svc := NewService(&fakeBusinessRepo{}, nil, repo, testKey)

	_, _, err = svc.LoginAccount(context.Background(), "user@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyToken_RejectsGarbage(t *testing.T) {
	svc := NewService(&fakeBusinessRepo{}, nil, nil, testKey)

	_, _, err := svc.VerifyToken("not-a-token")
	assert.Error(t, err)
}

func TestVerifyToken_RejectsWrongKey(t *testing.T) {
	signer := NewService(&fakeBusinessRepo{
		GetByCredentialsFunc: func(ctx context.Context, phone, licenseNumber string, businessType business.BusinessType) (*business.Business, error) {
			return &business.Business{ID: 1, BusinessType: business.TypeRestaurant}, nil
		},
	}, nil, nil, testKey)
	verifier := NewService(&fakeBusinessRepo{}, nil, nil, []byte("other-key"))

	session, err := signer.LoginBusiness(context.Background(), "0771234567", "LIC-1", "restaurant")
	require.NoError(t, err)

	_, _, err = verifier.VerifyToken(session.Token)
	assert.Error(t, err)
}
