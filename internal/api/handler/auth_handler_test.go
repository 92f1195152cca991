package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastemap/collection-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
	return s.registerFn(ctx, name, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthTestServer(svc *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.HTTPErrorHandler = testErrorHandler()

	h := NewAuthHandler(svc)
	e.POST("/api/auth/register", h.Register)
	e.POST("/api/auth/login", h.Login)
	return e
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, name, email, password string, role domain.Role) (*domain.User, error) {
			assert.Equal(t, "Uma", name)
			assert.Equal(t, "uma@example.com", email)
			assert.Equal(t, domain.Role(""), role)
			return &domain.User{ID: "u1", Name: name, Email: email, Role: domain.RoleUser}, nil
		},
	}
	e := newAuthTestServer(svc)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"name":"Uma","email":"uma@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, domain.RoleUser, resp.User.Role)
	assert.Empty(t, resp.Token)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, _, _, _ string, _ domain.Role) (*domain.User, error) {
			t.Fatal("service must not be called on schema violation")
			return nil, nil
		},
	}
	e := newAuthTestServer(svc)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"name":"Uma","email":"uma@example.com","password":"short"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Register_UnknownRoleRejected(t *testing.T) {
	svc := &stubAuthService{
		registerFn: func(_ context.Context, _, _, _ string, _ domain.Role) (*domain.User, error) {
			t.Fatal("service must not be called on schema violation")
			return nil, nil
		},
	}
	e := newAuthTestServer(svc)

	rec := doJSON(e, http.MethodPost, "/api/auth/register",
		`{"name":"Uma","email":"uma@example.com","password":"secret1","role":"superuser"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, email, password string) (string, *domain.User, error) {
			assert.Equal(t, "uma@example.com", email)
			assert.Equal(t, "secret1", password)
			return "tok123", &domain.User{ID: "u1", Email: email, Role: domain.RoleUser}, nil
		},
	}
	e := newAuthTestServer(svc)

	rec := doJSON(e, http.MethodPost, "/api/auth/login",
		`{"email":"uma@example.com","password":"secret1"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok123", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, "u1", resp.User.ID)
}

func TestAuthHandler_Login_MissingEmail(t *testing.T) {
	svc := &stubAuthService{
		loginFn: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			t.Fatal("service must not be called on schema violation")
			return "", nil, nil
		},
	}
	e := newAuthTestServer(svc)

	rec := doJSON(e, http.MethodPost, "/api/auth/login", `{"password":"secret1"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
