package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Usuario representa un usuario registrado en el sistema. El ID lo asigna la
// base de datos al crear; email y documento de identidad son únicos globalmente.
type Usuario struct {
	ID                 int64
	Nombres            string
	Apellidos          string
	FechaNacimiento    time.Time // solo fecha, a medianoche en zona local
	Email              string
	DocumentoIdentidad string
	Telefono           string
	Direccion          string
	SalarioBase        decimal.Decimal // en [0, 15.000.000]
	Rol                *Rol

	// Auditoría: los asigna la capa de persistencia, no el negocio.
	CreatedBy    string
	ModifiedBy   string
	DateCreated  time.Time
	DateModified time.Time
}
