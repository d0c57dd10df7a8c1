package dto

// Códigos de error de la API.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL"
	CodeInvalidBody  = "INVALID_BODY"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación de actualización o eliminación.
type MessageResponse struct {
	Mensaje        string `json:"mensaje"`
	FilasAfectadas int64  `json:"filas_afectadas"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
