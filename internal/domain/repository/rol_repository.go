package repository

import (
	"context"

	"github.com/crediya-co/autenticacion-api/internal/domain/entity"
)

// RolRepository define el puerto de lectura de roles. El flujo de usuarios
// nunca escribe roles, por eso el puerto es de solo lectura.
type RolRepository interface {
	GetAll(ctx context.Context) ([]*entity.Rol, error)
	GetByID(ctx context.Context, id int64) (*entity.Rol, error)
}
