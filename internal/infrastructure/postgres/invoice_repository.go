package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo lectura del join de facturación.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Inner joins: una venta sin líneas (o con líneas de productos inexistentes) no produce filas.
const invoiceRowsSelect = `
	SELECT v.id, COALESCE(v.cliente, 0), COALESCE(v.vendedor, 0), COALESCE(v.total, 0), v.fecha,
	       COALESCE(c.nombre, ''), COALESCE(c.dpi, ''),
	       COALESCE(d.cod_pro, ''), COALESCE(d.cantidad, 0), COALESCE(d.precio, 0),
	       COALESCE(p.descripcion, ''), COALESCE(p.marca, ''), COALESCE(p.color, '')
	FROM ventas v
	JOIN clientes c ON v.cliente = c.id
	JOIN detalle d ON v.id = d.id_venta
	JOIN productos p ON d.cod_pro = p.codigo`

// El orden principal es fecha descendente con las ventas sin fecha al final; id de venta y de línea solo desempatan.
const invoiceRowsOrder = ` ORDER BY v.fecha DESC NULLS LAST, v.id DESC, d.id`

// ListRows devuelve todas las filas del join.
func (r *InvoiceRepo) ListRows(ctx context.Context) ([]entity.InvoiceRow, error) {
	rows, err := r.q.Query(ctx, invoiceRowsSelect+invoiceRowsOrder)
	if err != nil {
		return nil, fmt.Errorf("list facturaciones: %w", err)
	}
	return scanInvoiceRows(rows)
}

// ListRowsBySale devuelve las filas del join de una sola venta.
func (r *InvoiceRepo) ListRowsBySale(ctx context.Context, saleID int64) ([]entity.InvoiceRow, error) {
	rows, err := r.q.Query(ctx, invoiceRowsSelect+` WHERE v.id = $1`+invoiceRowsOrder, saleID)
	if err != nil {
		return nil, fmt.Errorf("list facturacion venta %d: %w", saleID, err)
	}
	return scanInvoiceRows(rows)
}

func scanInvoiceRows(rows pgx.Rows) ([]entity.InvoiceRow, error) {
	defer rows.Close()
	var list []entity.InvoiceRow
	for rows.Next() {
		var row entity.InvoiceRow
		if err := rows.Scan(
			&row.VentaID, &row.ClienteID, &row.Vendedor, &row.Total, &row.Fecha,
			&row.ClienteNombre, &row.ClienteDPI,
			&row.CodPro, &row.Cantidad, &row.Precio,
			&row.ProductoDescripcion, &row.Marca, &row.Color,
		); err != nil {
			return nil, fmt.Errorf("scan facturacion: %w", err)
		}
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan facturacion: %w", err)
	}
	return list, nil
}
