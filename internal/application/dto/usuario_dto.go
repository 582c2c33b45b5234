package dto

import (
	"regexp"
	"strings"
	"time"

	"github.com/crediya-co/autenticacion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Reglas de formato de la capa de entrada. El caso de uso tiene sus propias
// validaciones de negocio; aquí solo se filtra forma (patrones y presencia).
var (
	patronNombres   = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ ]+$`)
	patronDocumento = regexp.MustCompile(`^[0-9]{5,20}$`)
	patronTelefono  = regexp.MustCompile(`^[0-9]{7,15}$`)
	patronEmail     = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,6}$`)
)

// UsuarioDTO cuerpo de entrada y salida para usuarios. En actualizaciones el
// id identifica el registro a reemplazar; en creaciones se ignora.
type UsuarioDTO struct {
	ID                 int64            `json:"id,omitempty"`
	Nombres            string           `json:"nombres"`
	Apellidos          string           `json:"apellidos"`
	FechaNacimiento    Fecha            `json:"fechaNacimiento"`
	Email              string           `json:"email"`
	DocumentoIdentidad string           `json:"documentoIdentidad"`
	Telefono           string           `json:"telefono"`
	Direccion          string           `json:"direccion"`
	SalarioBase        *decimal.Decimal `json:"salarioBase"`
	Rol                *RolDTO          `json:"rol"`
}

// Validar revisa las restricciones de formato del DTO y devuelve un mapa
// campo → mensaje con todos los fallos encontrados. Un mapa vacío significa
// que el cuerpo es válido a nivel de entrada.
func (d *UsuarioDTO) Validar() map[string]string {
	errores := make(map[string]string)

	if strings.TrimSpace(d.Nombres) == "" {
		errores["nombres"] = "El nombre no puede estar vacío"
	} else if !patronNombres.MatchString(d.Nombres) {
		errores["nombres"] = "Los nombres solo deben contener letras y espacios"
	}
	if strings.TrimSpace(d.Apellidos) == "" {
		errores["apellidos"] = "Los apellidos no pueden estar vacíos"
	} else if !patronNombres.MatchString(d.Apellidos) {
		errores["apellidos"] = "Los apellidos solo deben contener letras y espacios"
	}
	if strings.TrimSpace(d.Email) == "" {
		errores["email"] = "El email no puede estar vacío"
	} else if !patronEmail.MatchString(d.Email) {
		errores["email"] = "El email no es válido"
	}
	if strings.TrimSpace(d.DocumentoIdentidad) == "" {
		errores["documentoIdentidad"] = "El documento de identidad no puede estar vacío"
	} else if !patronDocumento.MatchString(d.DocumentoIdentidad) {
		errores["documentoIdentidad"] = "El documento de identidad debe contener solo números y tener entre 5 y 20 dígitos"
	}
	if strings.TrimSpace(d.Telefono) == "" {
		errores["telefono"] = "El teléfono no puede estar vacío"
	} else if !patronTelefono.MatchString(d.Telefono) {
		errores["telefono"] = "El teléfono debe contener solo números y tener entre 7 y 15 dígitos"
	}
	if strings.TrimSpace(d.Direccion) == "" {
		errores["direccion"] = "La dirección no puede estar vacía"
	}
	if d.FechaNacimiento.IsZero() {
		errores["fechaNacimiento"] = "La fecha de nacimiento no puede estar vacía"
	}
	if d.SalarioBase == nil {
		errores["salarioBase"] = "El salario base no puede estar vacío"
	}
	if d.Rol == nil || d.Rol.ID == 0 {
		errores["rol"] = "El rol del usuario no puede ser nulo"
	}

	return errores
}

// AEntity mapea el DTO ya validado a la entidad de dominio.
func (d *UsuarioDTO) AEntity() *entity.Usuario {
	u := &entity.Usuario{
		ID:                 d.ID,
		Nombres:            d.Nombres,
		Apellidos:          d.Apellidos,
		FechaNacimiento:    d.FechaNacimiento.Time,
		Email:              d.Email,
		DocumentoIdentidad: d.DocumentoIdentidad,
		Telefono:           d.Telefono,
		Direccion:          d.Direccion,
	}
	if d.SalarioBase != nil {
		u.SalarioBase = *d.SalarioBase
	}
	if d.Rol != nil {
		u.Rol = &entity.Rol{ID: d.Rol.ID, Nombre: d.Rol.Nombre, Descripcion: d.Rol.Descripcion}
	}
	return u
}

// UsuarioResponse salida de un usuario con auditoría y rol rehidratado.
type UsuarioResponse struct {
	ID                 int64           `json:"id"`
	Nombres            string          `json:"nombres"`
	Apellidos          string          `json:"apellidos"`
	FechaNacimiento    Fecha           `json:"fechaNacimiento"`
	Email              string          `json:"email"`
	DocumentoIdentidad string          `json:"documentoIdentidad"`
	Telefono           string          `json:"telefono"`
	Direccion          string          `json:"direccion"`
	SalarioBase        decimal.Decimal `json:"salarioBase"`
	Rol                *RolDTO         `json:"rol,omitempty"`
	CreatedBy          string          `json:"createdBy,omitempty"`
	ModifiedBy         string          `json:"modifiedBy,omitempty"`
	DateCreated        *time.Time      `json:"dateCreated,omitempty"`
	DateModified       *time.Time      `json:"dateModified,omitempty"`
}

// UsuarioDesdeEntity mapea la entidad persistida a la respuesta de la API.
func UsuarioDesdeEntity(u *entity.Usuario) *UsuarioResponse {
	if u == nil {
		return nil
	}
	resp := &UsuarioResponse{
		ID:                 u.ID,
		Nombres:            u.Nombres,
		Apellidos:          u.Apellidos,
		FechaNacimiento:    NuevaFecha(u.FechaNacimiento),
		Email:              u.Email,
		DocumentoIdentidad: u.DocumentoIdentidad,
		Telefono:           u.Telefono,
		Direccion:          u.Direccion,
		SalarioBase:        u.SalarioBase,
		Rol:                RolDesdeEntity(u.Rol),
		CreatedBy:          u.CreatedBy,
		ModifiedBy:         u.ModifiedBy,
	}
	if !u.DateCreated.IsZero() {
		t := u.DateCreated
		resp.DateCreated = &t
	}
	if !u.DateModified.IsZero() {
		t := u.DateModified
		resp.DateModified = &t
	}
	return resp
}
