package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/crediya-co/autenticacion-api/internal/application/dto"
	"github.com/crediya-co/autenticacion-api/internal/application/usecase"
	"github.com/crediya-co/autenticacion-api/internal/domain"
)

// UsuarioHandler maneja las peticiones HTTP para Usuario.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// Guardar godoc
// @Summary      Guardar un nuevo usuario
// @Description  Registra un nuevo usuario validando unicidad de email y documento.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsuarioDTO  true  "Datos del usuario"
// @Success      200   {object}  dto.ApiResponse
// @Failure      400   {object}  dto.ApiResponse
// @Failure      409   {object}  dto.ApiResponse
// @Router       /api/v1/usuarios [post]
func (h *UsuarioHandler) Guardar(c *fiber.Ctx) error {
	var in dto.UsuarioDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ApiResponse{
			Codigo: fiber.StatusBadRequest, Mensaje: "Cuerpo de la petición inválido",
		})
	}
	if errores := in.Validar(); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ApiResponse{
			Codigo: fiber.StatusBadRequest, Mensaje: "Error de validación", Body: errores,
		})
	}
	in.ID = 0 // el ID lo asigna la base de datos

	guardado, err := h.uc.Guardar(c.UserContext(), in.AEntity())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ApiResponse{
		Codigo:  fiber.StatusOK,
		Mensaje: "Usuario guardado exitosamente",
		Body:    dto.UsuarioDesdeEntity(guardado),
	})
}

// Actualizar godoc
// @Summary      Actualizar un usuario existente
// @Description  Reemplaza por completo un usuario; email y documento no pueden pertenecer a otro usuario.
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UsuarioDTO  true  "Datos del usuario con id"
// @Success      200   {object}  dto.ApiResponse
// @Failure      400   {object}  dto.ApiResponse
// @Failure      409   {object}  dto.ApiResponse
// @Router       /api/v1/usuarios [put]
func (h *UsuarioHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.UsuarioDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ApiResponse{
			Codigo: fiber.StatusBadRequest, Mensaje: "Cuerpo de la petición inválido",
		})
	}
	if errores := in.Validar(); len(errores) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ApiResponse{
			Codigo: fiber.StatusBadRequest, Mensaje: "Error de validación", Body: errores,
		})
	}

	actualizado, err := h.uc.Actualizar(c.UserContext(), in.AEntity())
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(dto.ApiResponse{
		Codigo:  fiber.StatusOK,
		Mensaje: "Usuario actualizado exitosamente",
		Body:    dto.UsuarioDesdeEntity(actualizado),
	})
}

// Listar godoc
// @Summary      Obtener todos los usuarios
// @Tags         usuarios
// @Produce      json
// @Success      200  {array}  dto.UsuarioResponse
// @Router       /api/v1/usuarios [get]
func (h *UsuarioHandler) Listar(c *fiber.Ctx) error {
	usuarios, err := h.uc.Listar(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	lista := make([]*dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		lista = append(lista, dto.UsuarioDesdeEntity(u))
	}
	return c.JSON(lista)
}

// BuscarPorID godoc
// @Summary      Obtener un usuario por ID
// @Tags         usuarios
// @Produce      json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      404  {object}  dto.ApiResponse
// @Router       /api/v1/usuarios/{id} [get]
func (h *UsuarioHandler) BuscarPorID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ApiResponse{
			Codigo: fiber.StatusBadRequest, Mensaje: "ID de usuario inválido",
		})
	}
	usuario, err := h.uc.BuscarPorID(c.UserContext(), id)
	if err != nil {
		return responderError(c, err)
	}
	if usuario == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ApiResponse{
			Codigo: fiber.StatusNotFound, Mensaje: "Usuario no encontrado",
		})
	}
	return c.JSON(dto.UsuarioDesdeEntity(usuario))
}

// Eliminar godoc
// @Summary      Eliminar un usuario por ID
// @Description  Idempotente: eliminar un ID inexistente también responde 204.
// @Tags         usuarios
// @Param        id  path  int  true  "ID del usuario"
// @Success      204
// @Failure      400  {object}  dto.ApiResponse
// @Router       /api/v1/usuarios/{id} [delete]
func (h *UsuarioHandler) Eliminar(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ApiResponse{
			Codigo: fiber.StatusBadRequest, Mensaje: "ID de usuario inválido",
		})
	}
	if err := h.uc.Eliminar(c.UserContext(), id); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// responderError clasifica el error del caso de uso: validación → 400 con el
// campo fallido, conflicto de unicidad → 409 con el mensaje de negocio, y
// cualquier otro → 500 sin detalle interno.
func responderError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ApiResponse{
			Codigo:  fiber.StatusBadRequest,
			Mensaje: "Error de validación",
			Body:    map[string]string{vErr.Campo: vErr.Mensaje},
		})
	case domain.EsConflicto(err):
		return c.Status(fiber.StatusConflict).JSON(dto.ApiResponse{
			Codigo: fiber.StatusConflict, Mensaje: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ApiResponse{
			Codigo: fiber.StatusInternalServerError, Mensaje: "Error de infraestructura",
		})
	}
}
