package http_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/crediya-co/autenticacion-api/internal/interfaces/http"
	"github.com/crediya-co/autenticacion-api/pkg/jwt"
)

const secretoDePrueba = "secreto-de-prueba"

func buildProtectedApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.AuthMiddleware(secretoDePrueba))
	app.Get("/perfil", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": apphttp.GetEmail(c),
			"rol":   apphttp.GetRol(c),
		})
	})
	return app
}

func solicitar(t *testing.T, app *fiber.App, authHeader string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/perfil", nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddleware_TokenValido(t *testing.T) {
	app := buildProtectedApp()
	token, err := jwt.Generate(secretoDePrueba, "asesor@crediya.co", "ASESOR", "crediya", 60)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, solicitar(t, app, "Bearer "+token))
}

func TestAuthMiddleware_SinEncabezado(t *testing.T) {
	app := buildProtectedApp()

	assert.Equal(t, fiber.StatusUnauthorized, solicitar(t, app, ""))
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildProtectedApp()

	assert.Equal(t, fiber.StatusUnauthorized, solicitar(t, app, "Basic abc123"))
	assert.Equal(t, fiber.StatusUnauthorized, solicitar(t, app, "Bearer "))
}

func TestAuthMiddleware_FirmaIncorrecta(t *testing.T) {
	app := buildProtectedApp()
	token, err := jwt.Generate("otro-secreto", "asesor@crediya.co", "ASESOR", "crediya", 60)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, solicitar(t, app, "Bearer "+token))
}

func TestAuthMiddleware_TokenExpirado(t *testing.T) {
	app := buildProtectedApp()
	token, err := jwt.Generate(secretoDePrueba, "asesor@crediya.co", "ASESOR", "crediya", -5)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, solicitar(t, app, "Bearer "+token))
}
