package usecase

import (
	"context"

	"github.com/crediya-co/autenticacion-api/internal/domain/entity"
	"github.com/crediya-co/autenticacion-api/internal/domain/repository"
)

// RolUseCase lecturas de roles. Los roles se administran fuera de este
// servicio; aquí solo se consultan.
type RolUseCase struct {
	roles repository.RolRepository
}

// NewRolUseCase construye el caso de uso de roles.
func NewRolUseCase(roles repository.RolRepository) *RolUseCase {
	return &RolUseCase{roles: roles}
}

// Listar devuelve todos los roles.
func (uc *RolUseCase) Listar(ctx context.Context) ([]*entity.Rol, error) {
	return uc.roles.GetAll(ctx)
}

// BuscarPorID devuelve (nil, nil) si el rol no existe.
func (uc *RolUseCase) BuscarPorID(ctx context.Context, id int64) (*entity.Rol, error) {
	return uc.roles.GetByID(ctx, id)
}
