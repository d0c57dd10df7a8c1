package postgres

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo CRUD de productos más búsqueda por código.
type ProductRepo struct {
	*CRUDRepo[entity.Product]
	getByCodigo string
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{
		CRUDRepo:    NewCRUDRepository(q, productsTable),
		getByCodigo: "SELECT " + productsTable.selectList() + " FROM productos WHERE codigo = $1 ORDER BY id LIMIT 1",
	}
}

// GetByCodigo devuelve el producto con ese código o (nil, nil).
// Si la base admite códigos repetidos se devuelve el de menor id.
func (r *ProductRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Product, error) {
	return r.getOne(ctx, "get by codigo", r.getByCodigo, codigo)
}
