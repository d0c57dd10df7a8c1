package postgres

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var (
	_ repository.CRUDRepository[entity.IssuerConfig] = (*IssuerConfigRepo)(nil)
	_ repository.IssuerConfigReader                  = (*IssuerConfigRepo)(nil)
)

// IssuerConfigRepo CRUD de la tabla config y lectura del emisor para facturas.
type IssuerConfigRepo struct {
	*CRUDRepo[entity.IssuerConfig]
	first string
}

// NewIssuerConfigRepository construye el adaptador de config.
func NewIssuerConfigRepository(q Querier) *IssuerConfigRepo {
	return &IssuerConfigRepo{
		CRUDRepo: NewCRUDRepository(q, issuerConfigTable),
		first:    "SELECT " + issuerConfigTable.selectList() + " FROM config ORDER BY id LIMIT 1",
	}
}

// First devuelve la fila de menor id o (nil, nil) si la tabla está vacía.
func (r *IssuerConfigRepo) First(ctx context.Context) (*entity.IssuerConfig, error) {
	return r.getOne(ctx, "first", r.first)
}
