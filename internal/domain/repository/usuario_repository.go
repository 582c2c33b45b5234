package repository

import (
	"context"

	"github.com/crediya-co/autenticacion-api/internal/domain/entity"
)

// UsuarioRepository define el puerto de persistencia para Usuario (DIP).
// Las búsquedas devuelven (nil, nil) cuando no hay coincidencia: la ausencia
// es un resultado válido, no un error.
type UsuarioRepository interface {
	// Save inserta si el usuario no tiene ID y reemplaza por completo si lo
	// tiene. Devuelve el usuario persistido con ID, auditoría y rol cargados.
	Save(ctx context.Context, usuario *entity.Usuario) (*entity.Usuario, error)
	GetAll(ctx context.Context) ([]*entity.Usuario, error)
	GetByID(ctx context.Context, id int64) (*entity.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*entity.Usuario, error)
	GetByDocumentoIdentidad(ctx context.Context, documento string) (*entity.Usuario, error)
	// Delete es un no-op si el ID no existe.
	Delete(ctx context.Context, id int64) error
}
