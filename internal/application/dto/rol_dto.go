package dto

import "github.com/crediya-co/autenticacion-api/internal/domain/entity"

// RolDTO representación de un rol en la API. En las peticiones de usuario
// basta con el id; nombre y descripción se rehidratan desde la base de datos.
type RolDTO struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
}

// RolDesdeEntity mapea la entidad Rol al DTO de salida.
func RolDesdeEntity(r *entity.Rol) *RolDTO {
	if r == nil {
		return nil
	}
	return &RolDTO{
		ID:          r.ID,
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
	}
}
