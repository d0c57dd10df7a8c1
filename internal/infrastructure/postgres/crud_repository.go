package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// CRUDRepo implementación genérica de repository.CRUDRepository sobre un Table[T].
type CRUDRepo[T any] struct {
	q     Querier
	table Table[T]
	sql   tableSQL
}

// NewCRUDRepository construye el adaptador. Panics si el descriptor está incompleto:
// los descriptores son constantes del paquete y un error aquí es de programación.
func NewCRUDRepository[T any](q Querier, table Table[T]) *CRUDRepo[T] {
	if err := table.validate(); err != nil {
		panic(err)
	}
	return &CRUDRepo[T]{q: q, table: table, sql: table.build()}
}

var _ repository.CRUDRepository[struct{}] = (*CRUDRepo[struct{}])(nil)

// Create inserta la fila y asigna el id generado por la base de datos.
func (r *CRUDRepo[T]) Create(ctx context.Context, e *T) error {
	if err := r.q.QueryRow(ctx, r.sql.insert, r.table.Values(e)...).Scan(r.table.ID(e)); err != nil {
		return queryError("insert", r.table.Name, err)
	}
	return nil
}

// List devuelve todas las filas ordenadas por id; nunca nil.
func (r *CRUDRepo[T]) List(ctx context.Context) ([]*T, error) {
	rows, err := r.q.Query(ctx, r.sql.list)
	if err != nil {
		return nil, queryError("list", r.table.Name, err)
	}
	defer rows.Close()

	list := make([]*T, 0)
	for rows.Next() {
		e := new(T)
		if err := rows.Scan(r.table.scanTargets(e)...); err != nil {
			return nil, queryError("scan", r.table.Name, err)
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, queryError("list", r.table.Name, err)
	}
	return list, nil
}

// GetByID devuelve (nil, nil) si no existe la fila.
func (r *CRUDRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	e := new(T)
	err := r.q.QueryRow(ctx, r.sql.getByID, id).Scan(r.table.scanTargets(e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, queryError("get", r.table.Name, err)
	}
	return e, nil
}

// Update reemplaza todas las columnas escribibles de la fila id.
func (r *CRUDRepo[T]) Update(ctx context.Context, id int64, e *T) (int64, error) {
	args := append(r.table.Values(e), id)
	tag, err := r.q.Exec(ctx, r.sql.update, args...)
	if err != nil {
		return 0, queryError("update", r.table.Name, err)
	}
	return tag.RowsAffected(), nil
}

// Delete elimina la fila id.
func (r *CRUDRepo[T]) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.q.Exec(ctx, r.sql.delete, id)
	if err != nil {
		return 0, queryError("delete", r.table.Name, err)
	}
	return tag.RowsAffected(), nil
}

// getOne ejecuta una consulta de una fila con las columnas del descriptor.
func (r *CRUDRepo[T]) getOne(ctx context.Context, op, query string, args ...any) (*T, error) {
	e := new(T)
	err := r.q.QueryRow(ctx, query, args...).Scan(r.table.scanTargets(e)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, queryError(op, r.table.Name, err)
	}
	return e, nil
}
