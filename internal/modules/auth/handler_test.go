package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodsafe/foodsafe-backend/internal/modules/account"
	"github.com/foodsafe/foodsafe-backend/internal/modules/business"
)

type createRecordingRepo struct {
	fakeBusinessRepo
	created []*business.Business
}

func (f *createRecordingRepo) Create(ctx context.Context, b *business.Business) error {
	b.ID = int64(len(f.created) + 1)
	f.created = append(f.created, b)
	return nil
}

type creatingAccountRepo struct {
	fakeAccountRepo
}

func (f *creatingAccountRepo) Create(ctx context.Context, a *account.Account) error { return nil }

func newAuthRouter(repo business.Repository, accounts account.Repository) chi.Router {
	businessService := business.NewService(repo)
	accountService := account.NewService(accounts)
	service := NewService(repo, businessService, accounts, testKey)

	router := chi.NewRouter()
	NewHandler(service, accountService).RegisterRoutes(router)
	return router
}

func postJSON(t *testing.T, router chi.Router, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterBusinessHandler_MissingFields(t *testing.T) {
	router := newAuthRouter(&createRecordingRepo{}, &creatingAccountRepo{})

	rec := postJSON(t, router, "/api/business/register", `{"businessName":"Pearl Foods"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	assert.Equal(t, "missing required fields", env.Error)
}

func TestRegisterBusinessHandler_UnknownType(t *testing.T) {
	router := newAuthRouter(&createRecordingRepo{}, &creatingAccountRepo{})

	rec := postJSON(t, router, "/api/business/register",
		`{"businessName":"Pearl Foods","phoneNumber":"0771234567","licenseNumber":"LIC-2201","businessType":"bakery"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "bakery")
}

func TestRegisterBusinessHandler_Success(t *testing.T) {
	repo := &createRecordingRepo{}
	router := newAuthRouter(repo, &creatingAccountRepo{})

	rec := postJSON(t, router, "/api/business/register",
		`{"businessName":"Pearl Foods","phoneNumber":"0771234567","licenseNumber":"LIC-2201","businessType":"restaurant"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.created, 1)

	var env struct {
		Success bool            `json:"success"`
		Data    BusinessSession `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Data.Token)
	assert.Equal(t, int64(1), env.Data.BusinessID)
}

func TestRegisterConsumerHandler_MissingFields(t *testing.T) {
	router := newAuthRouter(&createRecordingRepo{}, &creatingAccountRepo{})

	rec := postJSON(t, router, "/api/consumer/register", `{"name":"Asha"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing required fields")
}

func TestRegisterConsumerHandler_Success(t *testing.T) {
	router := newAuthRouter(&createRecordingRepo{}, &creatingAccountRepo{})

	rec := postJSON(t, router, "/api/consumer/register",
		`{"name":"Asha","phone":"0772223344","email":"asha@example.com","password":"secret123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"consumer"`)
}
