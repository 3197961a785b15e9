package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"arabyprompts/internal/middleware"
	"arabyprompts/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver map[string]*models.User

func (s stubResolver) Resolve(token string) *models.User { return s[token] }

func newGateApp(resolver stubResolver) *fiber.App {
	app := fiber.New()
	app.Use(middleware.Session(resolver))
	app.Get("/me", middleware.AuthRequired(), func(c *fiber.Ctx) error {
		return c.SendString(middleware.CurrentUser(c).ID)
	})
	admin := app.Group("/admin", middleware.AdminRequired("/"))
	admin.Get("/overview", func(c *fiber.Ctx) error { return c.SendString("secret") })
	return app
}

func doGet(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAdminRequired(t *testing.T) {
	app := newGateApp(stubResolver{
		"admin": {ID: "u1", Role: models.RoleAdmin},
		"user":  {ID: "u2", Role: models.RoleUser},
		"pro":   {ID: "u3", Role: models.RolePro, Plan: models.PlanPro},
	})

	for _, token := range []string{"", "user", "pro", "unknown"} {
		resp := doGet(t, app, "/admin/overview", token)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "token %q", token)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	}

	resp := doGet(t, app, "/admin/overview", "admin")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequired(t *testing.T) {
	app := newGateApp(stubResolver{"user": {ID: "u2", Role: models.RoleUser}})

	assert.Equal(t, http.StatusUnauthorized, doGet(t, app, "/me", "").StatusCode)
	assert.Equal(t, http.StatusOK, doGet(t, app, "/me", "user").StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token user")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
