package billing

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// GroupSales agrupa las filas planas del join en un documento por venta.
//
// Una sola pasada: la primera fila de cada venta crea el documento (cliente, vendedor,
// total, fecha) y cada fila agrega una línea. Las ventas salen en el orden en que aparece
// su primera fila, por lo que se conserva el orden de la consulta (fecha descendente).
// Las filas de una misma venta no necesitan ser contiguas.
func GroupSales(rows []entity.InvoiceRow) []entity.Invoice {
	out := make([]entity.Invoice, 0)
	index := make(map[int64]int)

	for _, r := range rows {
		i, seen := index[r.VentaID]
		if !seen {
			out = append(out, entity.Invoice{
				VentaID: r.VentaID,
				Cliente: entity.InvoiceClient{
					ID:     r.ClienteID,
					Nombre: r.ClienteNombre,
					DPI:    r.ClienteDPI,
				},
				Vendedor: r.Vendedor,
				Total:    r.Total,
				Fecha:    r.Fecha,
				Detalles: make([]entity.InvoiceLine, 0, 1),
			})
			i = len(out) - 1
			index[r.VentaID] = i
		}
		out[i].Detalles = append(out[i].Detalles, entity.InvoiceLine{
			CodPro:              r.CodPro,
			Cantidad:            r.Cantidad,
			Precio:              r.Precio,
			ProductoDescripcion: r.ProductoDescripcion,
			Marca:               r.Marca,
			Color:               r.Color,
		})
	}
	return out
}
