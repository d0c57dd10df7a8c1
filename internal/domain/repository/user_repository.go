package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// UserRepository puerto de lectura de usuarios para validación.
type UserRepository interface {
	// ListByUsuario devuelve las filas con ese nombre de usuario, ordenadas por id.
	ListByUsuario(ctx context.Context, usuario string) ([]*entity.User, error)
}
