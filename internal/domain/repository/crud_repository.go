package repository

import "context"

// CRUDRepository puerto de persistencia genérico para recursos de una sola tabla.
// GetByID devuelve (nil, nil) cuando no hay filas; Update y Delete devuelven las filas afectadas.
type CRUDRepository[T any] interface {
	Create(ctx context.Context, e *T) error
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Update(ctx context.Context, id int64, e *T) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
