package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"medstore/internal/domain/entity"
	"medstore/internal/domain/repository"
	"medstore/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokenService struct {
	claims *service.Claims
	err    error
}

func (s *stubTokenService) GenerateToken(string, []string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenService) ValidateToken(string) (*service.Claims, error) {
	return s.claims, s.err
}

type stubUserRepo struct {
	user *entity.User
}

func (s *stubUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}

	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) FindByUsername(context.Context, string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepo) ExistsByUsernameOrEmail(context.Context, string, string) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) Create(context.Context, *entity.User) error {
	return nil
}

func (s *stubUserRepo) CountAdmins(context.Context) (int64, error) {
	return 0, nil
}

func runAuthenticated(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return nil
	}

	require.NoError(t, m.Authenticate(next)(c))

	return rec, c, reached
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	user := &entity.User{ID: "u-1", Username: "alice", Role: entity.RoleAdmin}
	m := NewAuthMiddleware(
		&stubTokenService{claims: &service.Claims{UserID: "u-1", Roles: []string{"user", "admin"}}},
		&stubUserRepo{user: user},
	)

	_, c, reached := runAuthenticated(t, m, "Bearer good-token")
	assert.True(t, reached)
	assert.Equal(t, "u-1", AuthenticatedUserID(c))
	require.NotNil(t, AuthenticatedUser(c))
	assert.Equal(t, []string{"user", "admin"}, c.Get(ContextKeyRoles))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{})

	rec, _, reached := runAuthenticated(t, m, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{})

	rec, _, reached := runAuthenticated(t, m, "Basic abc")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{err: errors.New("expired")}, &stubUserRepo{})

	rec, _, reached := runAuthenticated(t, m, "Bearer bad-token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_DeletedSubject(t *testing.T) {
	m := NewAuthMiddleware(
		&stubTokenService{claims: &service.Claims{UserID: "gone"}},
		&stubUserRepo{},
	)

	rec, _, reached := runAuthenticated(t, m, "Bearer good-token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(&stubTokenService{}, &stubUserRepo{})

	e := echo.New()

	run := func(roles any) (*httptest.ResponseRecorder, bool) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if roles != nil {
			c.Set(ContextKeyRoles, roles)
		}

		reached := false
		next := func(c echo.Context) error {
			reached = true

			return nil
		}
		require.NoError(t, m.RequireRole("admin")(next)(c))

		return rec, reached
	}

	rec, reached := run([]string{"user", "admin"})
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, reached = run([]string{"user"})
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, reached = run(nil)
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
