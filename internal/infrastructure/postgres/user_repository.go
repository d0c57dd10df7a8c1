package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo lectura de la tabla usuarios.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// ListByUsuario devuelve las filas con ese usuario. La contraseña se compara fuera de SQL.
func (r *UserRepo) ListByUsuario(ctx context.Context, usuario string) ([]*entity.User, error) {
	query := `SELECT id, usuario, COALESCE(pass, '') FROM usuarios WHERE usuario = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, usuario)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	defer rows.Close()

	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Usuario, &u.Pass); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
