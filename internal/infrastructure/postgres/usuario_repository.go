package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/crediya-co/autenticacion-api/internal/domain"
	"github.com/crediya-co/autenticacion-api/internal/domain/entity"
	"github.com/crediya-co/autenticacion-api/internal/domain/repository"
)

// DB es el subconjunto de pgx que usan los repositorios. Lo satisfacen tanto
// *pgxpool.Pool como pgx.Tx, así el mismo repositorio sirve dentro y fuera de
// una transacción.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
// Todas las lecturas rehidratan el rol con LEFT JOIN para que el rol embebido
// refleje lo almacenado y no la copia que haya enviado el cliente.
type UsuarioRepo struct {
	db DB
}

// NewUsuarioRepository construye el adaptador de persistencia para usuarios.
func NewUsuarioRepository(db DB) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const columnasUsuario = `
	u.id, u.nombres, u.apellidos, u.fecha_nacimiento, u.email, u.documento_identidad,
	u.telefono, u.direccion, u.salario_base,
	u.created_by, u.modified_by, u.date_created, u.date_modified,
	r.id, r.nombre, r.descripcion, r.created_by, r.modified_by, r.date_created, r.date_modified`

const desdeUsuarios = `
	FROM usuarios u
	LEFT JOIN roles r ON r.id = u.id_rol`

// Save inserta cuando el usuario no trae ID y reemplaza por completo cuando
// lo trae. Las violaciones de unicidad de la base (respaldo de los chequeos
// del caso de uso) se mapean al error de negocio correspondiente.
func (r *UsuarioRepo) Save(ctx context.Context, usuario *entity.Usuario) (*entity.Usuario, error) {
	var idRol *int64
	if usuario.Rol != nil && usuario.Rol.ID != 0 {
		id := usuario.Rol.ID
		idRol = &id
	}

	var err error
	if usuario.ID == 0 {
		query := `
			INSERT INTO usuarios (nombres, apellidos, fecha_nacimiento, email, documento_identidad,
				telefono, direccion, salario_base, id_rol, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id, date_created, date_modified`
		err = r.db.QueryRow(ctx, query,
			usuario.Nombres, usuario.Apellidos, usuario.FechaNacimiento, usuario.Email,
			usuario.DocumentoIdentidad, usuario.Telefono, usuario.Direccion, usuario.SalarioBase,
			idRol, nullString(usuario.CreatedBy),
		).Scan(&usuario.ID, &usuario.DateCreated, &usuario.DateModified)
	} else {
		query := `
			UPDATE usuarios SET nombres = $2, apellidos = $3, fecha_nacimiento = $4, email = $5,
				documento_identidad = $6, telefono = $7, direccion = $8, salario_base = $9,
				id_rol = $10, modified_by = $11, date_modified = now()
			WHERE id = $1
			RETURNING date_created, date_modified`
		err = r.db.QueryRow(ctx, query,
			usuario.ID, usuario.Nombres, usuario.Apellidos, usuario.FechaNacimiento, usuario.Email,
			usuario.DocumentoIdentidad, usuario.Telefono, usuario.Direccion, usuario.SalarioBase,
			idRol, nullString(usuario.ModifiedBy),
		).Scan(&usuario.DateCreated, &usuario.DateModified)
	}
	if err != nil {
		if isUniqueViolation(err) {
			if uniqueConstraint(err) == "usuarios_documento_identidad_key" {
				return nil, domain.ErrDocumentoRegistrado
			}
			return nil, domain.ErrEmailRegistrado
		}
		return nil, fmt.Errorf("guardar usuario: %w", err)
	}

	if err := r.cargarRol(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// GetAll devuelve todos los usuarios con su rol.
func (r *UsuarioRepo) GetAll(ctx context.Context) ([]*entity.Usuario, error) {
	rows, err := r.db.Query(ctx, `SELECT `+columnasUsuario+desdeUsuarios+` ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()

	var lista []*entity.Usuario
	for rows.Next() {
		u, err := escanearUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		lista = append(lista, u)
	}
	return lista, rows.Err()
}

// GetByID devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByID(ctx context.Context, id int64) (*entity.Usuario, error) {
	return r.buscarUno(ctx, `SELECT `+columnasUsuario+desdeUsuarios+` WHERE u.id = $1`, id)
}

// GetByEmail devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByEmail(ctx context.Context, email string) (*entity.Usuario, error) {
	return r.buscarUno(ctx, `SELECT `+columnasUsuario+desdeUsuarios+` WHERE u.email = $1`, email)
}

// GetByDocumentoIdentidad devuelve (nil, nil) si no existe.
func (r *UsuarioRepo) GetByDocumentoIdentidad(ctx context.Context, documento string) (*entity.Usuario, error) {
	return r.buscarUno(ctx, `SELECT `+columnasUsuario+desdeUsuarios+` WHERE u.documento_identidad = $1`, documento)
}

// Delete elimina por ID; si el ID no existe es un no-op.
func (r *UsuarioRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id); err != nil {
		return fmt.Errorf("eliminar usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) buscarUno(ctx context.Context, query string, arg any) (*entity.Usuario, error) {
	u, err := escanearUsuario(r.db.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar usuario: %w", err)
	}
	return u, nil
}

// cargarRol rehidrata el rol completo después de un save. Si el rol no existe
// en la base, se conserva el que traía el usuario.
func (r *UsuarioRepo) cargarRol(ctx context.Context, usuario *entity.Usuario) error {
	if usuario.Rol == nil || usuario.Rol.ID == 0 {
		return nil
	}
	var rol entity.Rol
	var createdBy, modifiedBy *string
	err := r.db.QueryRow(ctx,
		`SELECT id, nombre, descripcion, created_by, modified_by, date_created, date_modified
		 FROM roles WHERE id = $1`, usuario.Rol.ID,
	).Scan(&rol.ID, &rol.Nombre, &rol.Descripcion, &createdBy, &modifiedBy, &rol.DateCreated, &rol.DateModified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("cargar rol del usuario: %w", err)
	}
	if createdBy != nil {
		rol.CreatedBy = *createdBy
	}
	if modifiedBy != nil {
		rol.ModifiedBy = *modifiedBy
	}
	usuario.Rol = &rol
	return nil
}

// escanearUsuario arma la entidad desde una fila del SELECT con join de roles.
func escanearUsuario(row pgx.Row) (*entity.Usuario, error) {
	var (
		u                       entity.Usuario
		createdBy, modifiedBy   *string
		rolID                   *int64
		rolNombre, rolDesc      *string
		rolCreadoPor, rolModPor *string
		rolCreado, rolMod       *time.Time
	)
	err := row.Scan(
		&u.ID, &u.Nombres, &u.Apellidos, &u.FechaNacimiento, &u.Email, &u.DocumentoIdentidad,
		&u.Telefono, &u.Direccion, &u.SalarioBase,
		&createdBy, &modifiedBy, &u.DateCreated, &u.DateModified,
		&rolID, &rolNombre, &rolDesc, &rolCreadoPor, &rolModPor, &rolCreado, &rolMod,
	)
	if err != nil {
		return nil, err
	}
	if createdBy != nil {
		u.CreatedBy = *createdBy
	}
	if modifiedBy != nil {
		u.ModifiedBy = *modifiedBy
	}
	if rolID != nil {
		rol := &entity.Rol{ID: *rolID}
		if rolNombre != nil {
			rol.Nombre = *rolNombre
		}
		if rolDesc != nil {
			rol.Descripcion = *rolDesc
		}
		if rolCreadoPor != nil {
			rol.CreatedBy = *rolCreadoPor
		}
		if rolModPor != nil {
			rol.ModifiedBy = *rolModPor
		}
		if rolCreado != nil {
			rol.DateCreated = *rolCreado
		}
		if rolMod != nil {
			rol.DateModified = *rolMod
		}
		u.Rol = rol
	}
	return &u, nil
}
