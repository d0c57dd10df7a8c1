package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// SaleRepository agrega la consulta del id máximo al CRUD de ventas.
type SaleRepository interface {
	CRUDRepository[entity.Sale]
	// MaxID devuelve el mayor id de ventas, 0 si la tabla está vacía. Valor consultivo: no reserva nada.
	MaxID(ctx context.Context) (int64, error)
}
