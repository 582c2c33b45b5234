package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/crediya-co/autenticacion-api/internal/domain/entity"
	"github.com/crediya-co/autenticacion-api/internal/domain/repository"
)

var _ repository.RolRepository = (*RolRepo)(nil)

// RolRepo lecturas de roles sobre PostgreSQL.
type RolRepo struct {
	db DB
}

// NewRolRepository construye el adaptador de lectura de roles.
func NewRolRepository(db DB) *RolRepo {
	return &RolRepo{db: db}
}

const columnasRol = `id, nombre, descripcion, created_by, modified_by, date_created, date_modified`

// GetAll devuelve todos los roles ordenados por ID.
func (r *RolRepo) GetAll(ctx context.Context) ([]*entity.Rol, error) {
	rows, err := r.db.Query(ctx, `SELECT `+columnasRol+` FROM roles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listar roles: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Rol
	for rows.Next() {
		rol, err := escanearRol(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rol: %w", err)
		}
		lista = append(lista, rol)
	}
	return lista, rows.Err()
}

// GetByID devuelve (nil, nil) si el rol no existe.
func (r *RolRepo) GetByID(ctx context.Context, id int64) (*entity.Rol, error) {
	rol, err := escanearRol(r.db.QueryRow(ctx, `SELECT `+columnasRol+` FROM roles WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar rol: %w", err)
	}
	return rol, nil
}

func escanearRol(row pgx.Row) (*entity.Rol, error) {
	var rol entity.Rol
	var createdBy, modifiedBy *string
	err := row.Scan(&rol.ID, &rol.Nombre, &rol.Descripcion, &createdBy, &modifiedBy,
		&rol.DateCreated, &rol.DateModified)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		rol.CreatedBy = *createdBy
	}
	if modifiedBy != nil {
		rol.ModifiedBy = *modifiedBy
	}
	return &rol, nil
}
