package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/haiderrentals/rental-api/internal/config"
	"github.com/haiderrentals/rental-api/internal/model"
	"github.com/haiderrentals/rental-api/internal/repository"
	"github.com/haiderrentals/rental-api/internal/utils"
)

// fakeUserStore records the arguments Register hands to the store so tests
// can check what would have been persisted.
type fakeUserStore struct {
	createdEmail string
	createdRole  string
	createErr    error
	user         model.User
	getErr       error
}

func (f *fakeUserStore) Create(ctx context.Context, email, password, name, phone, role string, cost int) (uint64, error) {
	f.createdEmail = email
	f.createdRole = role
	if f.createErr != nil {
		return 0, f.createErr
	}
	return 7, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return f.user, f.getErr
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uint64) (model.User, error) {
	return f.user, f.getErr
}

type fakeTokenStore struct{}

func (fakeTokenStore) StoreRefresh(ctx context.Context, userID uint64, tokenHash string, exp time.Time) error {
	return nil
}
func (fakeTokenStore) ValidateRefresh(ctx context.Context, tokenHash string) (uint64, error) {
	return 0, sql.ErrNoRows
}
func (fakeTokenStore) RevokeByHash(ctx context.Context, tokenHash string) error  { return nil }
func (fakeTokenStore) RevokeAllForUser(ctx context.Context, userID uint64) error { return nil }

func newTestAuthHandler(users *fakeUserStore) *AuthHandler {
	cfg := config.Config{
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 30,
		BcryptCost:     bcrypt.MinCost,
	}
	return NewAuthHandler(cfg, users, fakeTokenStore{})
}

type authTestResp struct {
	User struct {
		ID    uint64 `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
	Access struct {
		Token string `json:"token"`
	} `json:"access"`
	Refresh struct {
		Token string `json:"token"`
	} `json:"refresh"`
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing phone", `{"email":"ali@example.com","password":"secret1","name":"Ali"}`},
		{"bad email", `{"email":"not-an-email","password":"secret1","name":"Ali","phone":"0300-1234567"}`},
		{"short password", `{"email":"ali@example.com","password":"12345","name":"Ali","phone":"0300-1234567"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserStore{}
			h := newTestAuthHandler(users)

			c, rec := newContext(http.MethodPost, "/v1/auth/register", tt.body)
			require.NoError(t, h.Register(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			// Nothing may be persisted on a validation failure.
			assert.Empty(t, users.createdEmail)
		})
	}
}

func TestRegisterAlwaysAssignsCustomerRole(t *testing.T) {
	users := &fakeUserStore{}
	h := newTestAuthHandler(users)

	// A role in the request body must be ignored.
	body := `{"email":"Ali@Example.com","password":"secret1","name":"Ali","phone":"0300-1234567","role":"ADMIN"}`
	c, rec := newContext(http.MethodPost, "/v1/auth/register", body)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, RoleCustomer, users.createdRole)

	var resp authTestResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, RoleCustomer, resp.User.Role)
	assert.Equal(t, "ali@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Access.Token)
	assert.NotEmpty(t, resp.Refresh.Token)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := &fakeUserStore{createErr: repository.ErrEmailExists}
	h := newTestAuthHandler(users)

	body := `{"email":"ali@example.com","password":"secret1","name":"Ali","phone":"0300-1234567"}`
	c, rec := newContext(http.MethodPost, "/v1/auth/register", body)
	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLoginValidation(t *testing.T) {
	h := newTestAuthHandler(&fakeUserStore{})

	for _, body := range []string{
		`{}`,
		`{"email":"ali@example.com"}`,
		`{"password":"secret1"}`,
	} {
		c, rec := newContext(http.MethodPost, "/v1/auth/login", body)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	hash, err := utils.HashPassword("correct-pw", bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		users := &fakeUserStore{user: model.User{ID: 7, Email: "ali@example.com", PasswordHash: hash, Role: RoleCustomer}}
		h := newTestAuthHandler(users)

		c, rec := newContext(http.MethodPost, "/v1/auth/login", `{"email":"ali@example.com","password":"wrong-pw"}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		users := &fakeUserStore{getErr: sql.ErrNoRows}
		h := newTestAuthHandler(users)

		c, rec := newContext(http.MethodPost, "/v1/auth/login", `{"email":"ghost@example.com","password":"secret1"}`)
		require.NoError(t, h.Login(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLoginSuccess(t *testing.T) {
	hash, err := utils.HashPassword("correct-pw", bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUserStore{user: model.User{ID: 7, Email: "ali@example.com", PasswordHash: hash, Role: RoleCustomer}}
	h := newTestAuthHandler(users)

	c, rec := newContext(http.MethodPost, "/v1/auth/login", `{"email":"ali@example.com","password":"correct-pw"}`)
	require.NoError(t, h.Login(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp authTestResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint64(7), resp.User.ID)
	assert.Equal(t, RoleCustomer, resp.User.Role)
	assert.NotEmpty(t, resp.Access.Token)
}
