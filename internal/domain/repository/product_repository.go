package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ProductRepository agrega la búsqueda por código de negocio al CRUD de productos.
type ProductRepository interface {
	CRUDRepository[entity.Product]
	GetByCodigo(ctx context.Context, codigo string) (*entity.Product, error)
}
