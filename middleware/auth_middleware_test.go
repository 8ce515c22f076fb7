package middleware

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(AuthorizationRequired())
	app.Get("/protected", func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetToken(ctx))
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()
	request := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		request.Header.Set(fiber.HeaderAuthorization, authorization)
	}
	response, err := app.Test(request)
	require.Nil(t, err)
	return response
}

// unsignedJWT builds a syntactically valid JWT with the given claims and a
// junk signature; the middleware never verifies, only reads exp.
func unsignedJWT(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	encode := func(v interface{}) string {
		raw, err := json.Marshal(v)
		require.Nil(t, err)
		return base64.RawURLEncoding.EncodeToString(raw)
	}
	header := encode(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload := encode(claims)
	return fmt.Sprintf("%v.%v.%v", header, payload, base64.RawURLEncoding.EncodeToString([]byte("sig")))
}

func TestAuthorizationRequired(t *testing.T) {
	app := newTestApp()

	t.Run(`missing header`, func(t *testing.T) {
		response := doRequest(t, app, "")
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
	})

	t.Run(`wrong scheme`, func(t *testing.T) {
		response := doRequest(t, app, "Basic dXNlcjpwYXNz")
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
	})

	t.Run(`blank token`, func(t *testing.T) {
		response := doRequest(t, app, "Bearer   ")
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
	})

	t.Run(`opaque token passes through untouched`, func(t *testing.T) {
		response := doRequest(t, app, "Bearer opaque-session-token")
		require.Equal(t, http.StatusOK, response.StatusCode)

		body, err := io.ReadAll(response.Body)
		require.Nil(t, err)
		require.Equal(t, "opaque-session-token", string(body))
	})

	t.Run(`expired jwt is rejected locally`, func(t *testing.T) {
		token := unsignedJWT(t, map[string]interface{}{
			"exp": time.Now().Add(-time.Hour).Unix(),
		})
		response := doRequest(t, app, "Bearer "+token)
		require.Equal(t, http.StatusUnauthorized, response.StatusCode)
	})

	t.Run(`live jwt passes`, func(t *testing.T) {
		token := unsignedJWT(t, map[string]interface{}{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		response := doRequest(t, app, "Bearer "+token)
		require.Equal(t, http.StatusOK, response.StatusCode)
	})

	t.Run(`jwt without exp passes`, func(t *testing.T) {
		token := unsignedJWT(t, map[string]interface{}{"sub": "user-1"})
		response := doRequest(t, app, "Bearer "+token)
		require.Equal(t, http.StatusOK, response.StatusCode)
	})
}
