package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"undanganku_backend/internals/configs"
	helperAuth "undanganku_backend/internals/helpers/auth"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	old := configs.SessionSecret
	configs.SessionSecret = "test-secret"
	t.Cleanup(func() { configs.SessionSecret = old })

	app := fiber.New()
	app.Use(SessionMiddleware())

	app.Get("/login", func(c *fiber.Ctx) error { return c.SendString("login") })
	app.Get("/dashboard", func(c *fiber.Ctx) error { return c.SendString("dashboard") })
	app.Get("/api/invitation", func(c *fiber.Ctx) error { return c.SendString("public") })
	app.Put("/api/invitation", RequireSession(), func(c *fiber.Ctx) error { return c.SendString("updated") })

	return app
}

func sessionCookie(t *testing.T) string {
	t.Helper()
	user := helperAuth.SessionUser{ID: uuid.New(), Email: "admin@example.com", Name: "Admin"}
	token, _, err := helperAuth.BuildSessionToken(user, time.Now().UTC())
	require.NoError(t, err)
	return helperAuth.SessionCookieName + "=" + token
}

func TestSessionMiddlewareRedirects(t *testing.T) {
	app := newTestApp(t)

	t.Run("dashboard tanpa session redirect ke login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	})

	t.Run("dashboard dengan session lolos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Cookie", sessionCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("login dengan session redirect ke dashboard", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		req.Header.Set("Cookie", sessionCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
	})

	t.Run("login tanpa session tetap tampil", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/login", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("cookie rusak diperlakukan seperti tanpa session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
		req.Header.Set("Cookie", helperAuth.SessionCookieName+"=abc.def.ghi")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	})
}

func TestSessionMiddlewareSlidingRefresh(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/invitation", nil)
	req.Header.Set("Cookie", sessionCookie(t))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// setiap request dengan session valid menerbitkan ulang cookie
	var refreshed *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == helperAuth.SessionCookieName {
			refreshed = ck
		}
	}
	require.NotNil(t, refreshed, "cookie session harus di-set ulang")
	assert.NotEmpty(t, refreshed.Value)
	assert.True(t, refreshed.HttpOnly)
	assert.WithinDuration(t, time.Now().Add(helperAuth.SessionTTL), refreshed.Expires, time.Minute)
}

func TestRequireSession(t *testing.T) {
	app := newTestApp(t)

	t.Run("tanpa session 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/invitation", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("dengan session lolos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/invitation", nil)
		req.Header.Set("Cookie", sessionCookie(t))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("route publik tetap terbuka", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/invitation", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
