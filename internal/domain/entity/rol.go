package entity

import "time"

// Rol es el papel asociado a un usuario. Desde el flujo de usuarios solo se
// lee: el adaptador de persistencia lo rehidrata por ID para que el rol
// embebido refleje lo almacenado y no una copia del cliente.
type Rol struct {
	ID          int64
	Nombre      string
	Descripcion string

	CreatedBy    string
	ModifiedBy   string
	DateCreated  time.Time
	DateModified time.Time
}
