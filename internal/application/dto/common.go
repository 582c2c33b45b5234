package dto

// ApiResponse estructura estándar de respuesta de la API.
// Body se omite cuando no aplica (errores de conflicto, por ejemplo).
type ApiResponse struct {
	Codigo  int         `json:"codigo"`
	Mensaje string      `json:"mensaje"`
	Body    interface{} `json:"body,omitempty"`
}
