package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrUnauthorized = errors.New("usuario o contraseña incorrectos")
	// ErrStore agrupa cualquier fallo al hablar con la base de datos; no se subclasifica.
	ErrStore = errors.New("error ejecutando la consulta")
)
