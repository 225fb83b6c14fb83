package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"travel_manager/helper"
	"travel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/secure", Protected(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestProtectedMissingToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedInvalidToken(t *testing.T) {
	app := protectedApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedValidToken(t *testing.T) {
	helper.JwtSecret = []byte("test-secret")
	app := protectedApp()

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: 1,
		Username:  "admin",
		Role:      "ADMIN",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedWrongSecret(t *testing.T) {
	helper.JwtSecret = []byte("test-secret")
	token, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "admin"})
	require.NoError(t, err)

	helper.JwtSecret = []byte("rotated-secret")
	app := protectedApp()

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestProtectedCookieToken(t *testing.T) {
	helper.JwtSecret = []byte("test-secret")
	app := protectedApp()

	token, err := helper.GenerateAccessToken(model.TokenClaim{AccountId: 1, Username: "admin"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/secure", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
