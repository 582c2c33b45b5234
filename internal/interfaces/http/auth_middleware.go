package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/crediya-co/autenticacion-api/internal/application/dto"
	"github.com/crediya-co/autenticacion-api/pkg/jwt"
)

// Locals keys cargadas por AuthMiddleware.
const (
	LocalEmail = "usuario_email"
	LocalRol   = "usuario_rol"
)

// AuthMiddleware valida el Bearer Token HS256 emitido por la plataforma y
// deja email y rol del portador en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ApiResponse{
				Codigo: fiber.StatusUnauthorized, Mensaje: "Encabezado Authorization requerido",
			})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ApiResponse{
				Codigo: fiber.StatusUnauthorized, Mensaje: "Formato esperado: Bearer <token>",
			})
		}
		email, rol, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ApiResponse{
				Codigo: fiber.StatusUnauthorized, Mensaje: "Token inválido o expirado",
			})
		}
		c.Locals(LocalEmail, email)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// GetEmail devuelve el email del portador (después de AuthMiddleware).
func GetEmail(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalEmail).(string)
	return s
}

// GetRol devuelve el rol del portador (después de AuthMiddleware).
func GetRol(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRol).(string)
	return s
}
