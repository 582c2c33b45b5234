package usecase

import (
	"regexp"
	"strings"
	"time"

	"github.com/crediya-co/autenticacion-api/internal/domain"
	"github.com/crediya-co/autenticacion-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	emailValido = regexp.MustCompile(`(?i)^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,6}$`)
	salarioMax  = decimal.NewFromInt(15_000_000)
)

// validarUsuario aplica las reglas de negocio de campos en orden fijo y
// devuelve el primer fallo como *domain.ValidationError.
//
// Orden: nombres, apellidos, email (presencia y formato), documento,
// teléfono, fecha de nacimiento (presencia y no futura), salario base.
func validarUsuario(u *entity.Usuario) error {
	if strings.TrimSpace(u.Nombres) == "" {
		return &domain.ValidationError{Campo: "nombres", Mensaje: "El nombre no puede estar vacío"}
	}
	if strings.TrimSpace(u.Apellidos) == "" {
		return &domain.ValidationError{Campo: "apellidos", Mensaje: "Los apellidos no pueden estar vacíos"}
	}
	if strings.TrimSpace(u.Email) == "" {
		return &domain.ValidationError{Campo: "email", Mensaje: "El email no puede estar vacío"}
	}
	if !emailValido.MatchString(u.Email) {
		return &domain.ValidationError{Campo: "email", Mensaje: "El email no es válido"}
	}
	if strings.TrimSpace(u.DocumentoIdentidad) == "" {
		return &domain.ValidationError{Campo: "documentoIdentidad", Mensaje: "El documento de identidad no puede estar vacío"}
	}
	if strings.TrimSpace(u.Telefono) == "" {
		return &domain.ValidationError{Campo: "telefono", Mensaje: "El teléfono no puede estar vacío"}
	}
	if u.FechaNacimiento.IsZero() {
		return &domain.ValidationError{Campo: "fechaNacimiento", Mensaje: "La fecha de nacimiento no puede estar vacía"}
	}
	if esFutura(u.FechaNacimiento) {
		return &domain.ValidationError{Campo: "fechaNacimiento", Mensaje: "La fecha de nacimiento no puede ser futura"}
	}
	if u.SalarioBase.IsNegative() || u.SalarioBase.GreaterThan(salarioMax) {
		return &domain.ValidationError{Campo: "salarioBase", Mensaje: "El salario base debe estar entre 0 y 15,000,000"}
	}
	return nil
}

// esFutura compara a granularidad de día en la zona local: nacer hoy es
// válido, nacer mañana no.
func esFutura(fecha time.Time) bool {
	y, m, d := time.Now().Date()
	hoy := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	fy, fm, fd := fecha.Date()
	dia := time.Date(fy, fm, fd, 0, 0, 0, 0, time.Local)
	return dia.After(hoy)
}
