package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/support-ticket-api/internal/domain"
	apperrors "github.com/spec-kit/support-ticket-api/pkg/util"
)

func testApp(tm *TokenManager, roles ...domain.Role) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			domainErr := apperrors.ToDomainError(err)
			return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
		}
		return nil
	})

	mw := NewAuthMiddleware(tm)
	app.Get("/protected", mw.Handle, RequireRole(roles...), func(c *fiber.Ctx) error {
		principal, _ := PrincipalFromContext(c)
		return c.JSON(fiber.Map{"user_id": principal.UserID, "role": principal.Role})
	})
	return app
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	app := testApp(NewTokenManager("unit-secret", 60))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	app := testApp(NewTokenManager("unit-secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	app := testApp(NewTokenManager("unit-secret", 60))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	app := testApp(tm)

	token, _, err := tm.GenerateToken(7, domain.RoleSupport)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoleBlocksWrongRole(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	app := testApp(tm, domain.RoleManager)

	token, _, err := tm.GenerateToken(7, domain.RoleUser)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	tm := NewTokenManager("unit-secret", 60)
	app := testApp(tm, domain.RoleManager, domain.RoleSupport)

	token, _, err := tm.GenerateToken(7, domain.RoleSupport)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
