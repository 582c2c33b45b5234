package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crediya-co/autenticacion-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	UsuarioUC *usecase.UsuarioUseCase
	RolUC     *usecase.RolUseCase
	// JWTSecret protege /api/v1 cuando no está vacío (tokens emitidos por la
	// plataforma). Vacío = API abierta, útil en desarrollo.
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")
	if deps.JWTSecret != "" {
		api.Use(AuthMiddleware(deps.JWTSecret))
	}

	usuarios := api.Group("/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Post("/", usuarioHandler.Guardar)
	usuarios.Put("/", usuarioHandler.Actualizar)
	usuarios.Get("/", usuarioHandler.Listar)
	usuarios.Get("/:id", usuarioHandler.BuscarPorID)
	usuarios.Delete("/:id", usuarioHandler.Eliminar)

	roles := api.Group("/roles")
	rolHandler := NewRolHandler(deps.RolUC)
	roles.Get("/", rolHandler.Listar)
}
