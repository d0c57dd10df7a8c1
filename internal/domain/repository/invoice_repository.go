package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// InvoiceRepository lectura del join plano ventas ⋈ clientes ⋈ detalle ⋈ productos.
// Las filas llegan ordenadas por fecha de venta descendente y agrupadas por venta.
type InvoiceRepository interface {
	ListRows(ctx context.Context) ([]entity.InvoiceRow, error)
	ListRowsBySale(ctx context.Context, saleID int64) ([]entity.InvoiceRow, error)
}

// IssuerConfigReader lectura del emisor usado en las representaciones de factura.
type IssuerConfigReader interface {
	GetByID(ctx context.Context, id int64) (*entity.IssuerConfig, error)
	First(ctx context.Context) (*entity.IssuerConfig, error)
}
