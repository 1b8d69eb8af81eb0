package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altuslab/challenges-api/auth"
)

func gateApp(t *testing.T, gate *auth.Gate) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var richErr *goerrors.Error
			if goerrors.As(err, &richErr) {
				return c.Status(richErr.Code).JSON(fiber.Map{
					"error": richErr.Message,
					"code":  richErr.TextCode,
				})
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})

	echoPrincipal := func(c *fiber.Ctx) error {
		principal, ok := auth.PrincipalFromFiber(c)
		require.True(t, ok, "gated handler must see a principal")

		fromCtx, ok := auth.PrincipalFromContext(c.UserContext())
		require.True(t, ok, "principal must propagate to the request context")
		require.Equal(t, principal.ID, fromCtx.ID)

		return c.JSON(fiber.Map{"id": principal.ID, "role": principal.Role})
	}

	app.Get("/user", gate.RequireUser(), echoPrincipal)
	app.Get("/admin", gate.RequireAdmin(), echoPrincipal)

	return app
}

func doGet(t *testing.T, app *fiber.App, path, authorization string) (*http.Response, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	body := map[string]string{}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return resp, body
}

func TestGate(t *testing.T) {
	svc := auth.NewTokenService(testSigningKey, time.Hour, nil)
	verifier := auth.NewVerifier(svc, nil)
	app := gateApp(t, auth.NewGate(verifier, nil))

	userToken := issueFor(t, svc, true, false)
	adminToken := issueFor(t, svc, true, true)

	t.Run("missing header", func(t *testing.T) {
		resp, body := doGet(t, app, "/user", "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MISSING_CREDENTIALS", body["code"])
	})

	t.Run("bearer with empty token", func(t *testing.T) {
		resp, body := doGet(t, app, "/user", "Bearer ")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MALFORMED_CREDENTIALS", body["code"])
	})

	t.Run("wrong scheme with a valid token", func(t *testing.T) {
		resp, body := doGet(t, app, "/user", "Basic "+userToken)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MALFORMED_CREDENTIALS", body["code"])
	})

	t.Run("extra header fields", func(t *testing.T) {
		resp, body := doGet(t, app, "/user", "Bearer "+userToken+" trailing")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "MALFORMED_CREDENTIALS", body["code"])
	})

	t.Run("valid user token reaches the handler", func(t *testing.T) {
		resp, body := doGet(t, app, "/user", "Bearer "+userToken)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "u1", body["id"])
		assert.Equal(t, auth.RoleUser, body["role"])
	})

	t.Run("scheme comparison is case insensitive", func(t *testing.T) {
		resp, body := doGet(t, app, "/user", "bearer "+userToken)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "u1", body["id"])
	})

	t.Run("user token is rejected on admin routes", func(t *testing.T) {
		resp, body := doGet(t, app, "/admin", "Bearer "+userToken)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		assert.Equal(t, "INSUFFICIENT_ROLE", body["code"])
	})

	t.Run("admin token passes the admin gate", func(t *testing.T) {
		resp, body := doGet(t, app, "/admin", "Bearer "+adminToken)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, auth.RoleAdmin, body["role"])
	})

	t.Run("expired token", func(t *testing.T) {
		expired := signClaims(t, svc, baseClaims(time.Now().Add(-time.Minute)))

		resp, body := doGet(t, app, "/user", "Bearer "+expired)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "TOKEN_EXPIRED", body["code"])
	})

	t.Run("inactive account", func(t *testing.T) {
		inactive := issueFor(t, svc, false, false)

		resp, body := doGet(t, app, "/user", "Bearer "+inactive)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "INACTIVE_USER", body["code"])
	})
}
