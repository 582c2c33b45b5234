package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// esquema DDL del servicio. Los constraints únicos de email y documento son
// el respaldo de los chequeos de unicidad del caso de uso: dos escrituras
// concurrentes que pasen ambas la verificación terminan con una rechazada
// por la base (23505).
const esquema = `
CREATE TABLE IF NOT EXISTS roles (
	id            BIGSERIAL PRIMARY KEY,
	nombre        TEXT NOT NULL,
	descripcion   TEXT NOT NULL DEFAULT '',
	created_by    TEXT,
	modified_by   TEXT,
	date_created  TIMESTAMPTZ NOT NULL DEFAULT now(),
	date_modified TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS usuarios (
	id                  BIGSERIAL PRIMARY KEY,
	nombres             TEXT NOT NULL,
	apellidos           TEXT NOT NULL,
	fecha_nacimiento    DATE NOT NULL,
	email               TEXT NOT NULL UNIQUE,
	documento_identidad TEXT NOT NULL UNIQUE,
	telefono            TEXT NOT NULL,
	direccion           TEXT NOT NULL,
	salario_base        NUMERIC(15,2) NOT NULL,
	id_rol              BIGINT REFERENCES roles(id),
	created_by          TEXT,
	modified_by         TEXT,
	date_created        TIMESTAMPTZ NOT NULL DEFAULT now(),
	date_modified       TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// rolesSemilla roles base de la plataforma; los administra otro servicio,
// aquí solo se garantiza que existan en ambientes nuevos.
const rolesSemilla = `
INSERT INTO roles (id, nombre, descripcion)
VALUES
	(1, 'ADMIN',   'Administrador de la plataforma'),
	(2, 'ASESOR',  'Asesor de créditos'),
	(3, 'CLIENTE', 'Cliente solicitante')
ON CONFLICT (id) DO NOTHING;

SELECT setval('roles_id_seq', GREATEST((SELECT MAX(id) FROM roles), 1));
`

// EnsureSchema crea tablas, constraints e índices si no existen y siembra los
// roles base.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, esquema); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	if _, err := pool.Exec(ctx, rolesSemilla); err != nil {
		return fmt.Errorf("sembrar roles: %w", err)
	}
	return nil
}
