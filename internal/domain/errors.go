package domain

import (
	"errors"
	"fmt"
)

// Errores de negocio (sin dependencias externas). Los mensajes son los que
// llegan al cliente en el campo "mensaje" de la respuesta, por eso van en
// español y con mayúscula inicial.
var (
	ErrEmailRegistrado         = errors.New("El correo electrónico ya está registrado")
	ErrDocumentoRegistrado     = errors.New("El documento de identidad ya está registrado")
	ErrEmailRegistradoOtro     = errors.New("El correo electrónico ya está registrado por otro usuario")
	ErrDocumentoRegistradoOtro = errors.New("El documento de identidad ya está registrado por otro usuario")
)

// EsConflicto indica si el error corresponde a una violación de unicidad
// (email o documento ya registrados), propia o de otro usuario.
func EsConflicto(err error) bool {
	return errors.Is(err, ErrEmailRegistrado) ||
		errors.Is(err, ErrDocumentoRegistrado) ||
		errors.Is(err, ErrEmailRegistradoOtro) ||
		errors.Is(err, ErrDocumentoRegistradoOtro)
}

// ValidationError señala que un campo del usuario no cumple una regla de
// negocio. Las reglas se evalúan en orden y gana el primer fallo.
type ValidationError struct {
	Campo   string
	Mensaje string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Campo, e.Mensaje)
}
