package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/Dispensario-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Dispensario-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret    = "test-secret-key-for-unit-tests"
	testUserID       = "00000000-0000-0000-0000-000000000001"
	testDispensaryID = "00000000-0000-0000-0000-000000000002"
	testIssuer       = "dispensario-api-test"
	testExpMin       = 60
)

// buildMiddlewareApp construye una app Fiber mínima con una ruta protegida
// que devuelve 200 si el middleware deja pasar.
func buildMiddlewareApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"user_id":       apphttp.GetUserID(c),
				"dispensary_id": apphttp.GetDispensaryID(c),
			})
		},
	)
	return app
}

// validToken genera un JWT firmado con el secret de test.
func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testDispensaryID, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// doProtected lanza GET /protected con el header Authorization indicado.
func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// Sin header Authorization → 401 con el mensaje del contrato, y un SOLO response.
func TestAuthMiddleware_SinToken_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No token, authorization denied", body["message"])
}

// Header "Bearer" sin segundo segmento → también cuenta como token ausente.
func TestAuthMiddleware_BearerVacio_Retorna401(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "Bearer")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No token, authorization denied")
}

// Token malformado → 400 "Token is not valid".
func TestAuthMiddleware_TokenMalformado_Retorna400(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Token is not valid")
}

// Token firmado con otro secret → 400.
func TestAuthMiddleware_SecretIncorrecto_Retorna400(t *testing.T) {
	app := buildMiddlewareApp()
	tok, err := pkgjwt.Generate("otro-secret-completamente-distinto", testUserID, testDispensaryID, testIssuer, testExpMin)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Token expirado → 400.
func TestAuthMiddleware_TokenExpirado_Retorna400(t *testing.T) {
	app := buildMiddlewareApp()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testDispensaryID, testIssuer, -1)
	require.NoError(t, err)

	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Token válido → pasa y los claims quedan en locals.
func TestAuthMiddleware_TokenValido_ExtraeClaims(t *testing.T) {
	app := buildMiddlewareApp()
	resp := doProtected(t, app, "Bearer "+validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, testDispensaryID, body["dispensary_id"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad de generate/parse
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testDispensaryID, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, dispensaryID, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, testDispensaryID, dispensaryID)
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testDispensaryID, testIssuer, testExpMin)
	assert.Error(t, err, "un secret vacío nunca debe firmar tokens")

	_, _, err = pkgjwt.Parse("", "lo-que-sea")
	assert.Error(t, err)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testDispensaryID, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}
