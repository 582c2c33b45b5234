package dto

import (
	"fmt"
	"strings"
	"time"
)

// formatoFecha es el formato de fechas de la API (solo día, sin hora).
const formatoFecha = "2006-01-02"

// Fecha envuelve time.Time para serializar como "YYYY-MM-DD" en JSON.
// Se interpreta a medianoche en la zona local del sistema.
type Fecha struct {
	time.Time
}

// NuevaFecha construye una Fecha truncada a día en zona local.
func NuevaFecha(t time.Time) Fecha {
	y, m, d := t.Date()
	return Fecha{time.Date(y, m, d, 0, 0, 0, 0, time.Local)}
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.Format(formatoFecha) + `"`), nil
}

func (f *Fecha) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		f.Time = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(formatoFecha, s, time.Local)
	if err != nil {
		return fmt.Errorf("fecha inválida %q: se espera YYYY-MM-DD", s)
	}
	f.Time = t
	return nil
}
