package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crediya-co/autenticacion-api/internal/application/dto"
	"github.com/crediya-co/autenticacion-api/internal/application/usecase"
)

// RolHandler lecturas de roles.
type RolHandler struct {
	uc *usecase.RolUseCase
}

// NewRolHandler construye el handler.
func NewRolHandler(uc *usecase.RolUseCase) *RolHandler {
	return &RolHandler{uc: uc}
}

// Listar godoc
// @Summary      Obtener todos los roles
// @Tags         roles
// @Produce      json
// @Success      200  {array}  dto.RolDTO
// @Router       /api/v1/roles [get]
func (h *RolHandler) Listar(c *fiber.Ctx) error {
	roles, err := h.uc.Listar(c.UserContext())
	if err != nil {
		return responderError(c, err)
	}
	lista := make([]*dto.RolDTO, 0, len(roles))
	for _, r := range roles {
		lista = append(lista, dto.RolDesdeEntity(r))
	}
	return c.JSON(lista)
}
