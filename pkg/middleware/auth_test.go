package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"asset-system/client/authz"
	"asset-system/pkg/service"
	"asset-system/pkg/utils"
)

func newTestMiddleware() (*AuthMiddleware, service.JWTService) {
	jwtSvc := service.NewJWTService("test-secret", time.Hour, 24*time.Hour)
	return NewAuthMiddleware(jwtSvc, authz.NewAdminChecker(nil), zap.NewNop()), jwtSvc
}

func doRequest(mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		id, err := utils.GetUserIDFromCtx(c.Request().Context())
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, id.String())
	})
	return rec, handler(c)
}

func TestAuthMiddlewareAcceptsAccessToken(t *testing.T) {
	mw, jwtSvc := newTestMiddleware()
	userID := uuid.New()
	access, _, err := jwtSvc.GenerateTokens(userID, "user@corp.com")
	require.NoError(t, err)

	rec, err := doRequest(mw.Auth, "Bearer "+access)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	mw, _ := newTestMiddleware()

	rec, err := doRequest(mw.Auth, "")

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddlewareRejectsRefreshToken(t *testing.T) {
	mw, jwtSvc := newTestMiddleware()
	_, refresh, err := jwtSvc.GenerateTokens(uuid.New(), "user@corp.com")
	require.NoError(t, err)

	rec, err := doRequest(mw.Auth, "Bearer "+refresh)

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	mw, jwtSvc := newTestMiddleware()

	run := func(email string) *httptest.ResponseRecorder {
		access, _, err := jwtSvc.GenerateTokens(uuid.New(), email)
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Authorization", "Bearer "+access)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := mw.Auth(mw.RequireAdmin(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		}))
		require.NoError(t, handler(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, run("admin@admin.com").Code)
	assert.Equal(t, http.StatusForbidden, run("user@corp.com").Code)
}
