package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo CRUD de ventas más el id máximo.
type SaleRepo struct {
	*CRUDRepo[entity.Sale]
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{CRUDRepo: NewCRUDRepository(q, salesTable)}
}

// MaxID devuelve MAX(id) o 0 con la tabla vacía.
func (r *SaleRepo) MaxID(ctx context.Context) (int64, error) {
	var id int64
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM ventas`).Scan(&id); err != nil {
		return 0, fmt.Errorf("max id ventas: %w", err)
	}
	return id, nil
}
