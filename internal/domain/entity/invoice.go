package entity

import "github.com/shopspring/decimal"

// InvoiceRow fila plana del join ventas ⋈ clientes ⋈ detalle ⋈ productos.
type InvoiceRow struct {
	VentaID             int64
	ClienteID           int64
	ClienteNombre       string
	ClienteDPI          string
	Vendedor            int64
	Total               decimal.Decimal
	Fecha               Date
	CodPro              string
	Cantidad            int
	Precio              decimal.Decimal
	ProductoDescripcion string
	Marca               string
	Color               string
}

// Invoice documento anidado de una venta con su cliente y sus líneas enriquecidas.
type Invoice struct {
	VentaID  int64           `json:"venta_id"`
	Cliente  InvoiceClient   `json:"cliente"`
	Vendedor int64           `json:"vendedor"`
	Total    decimal.Decimal `json:"total"`
	Fecha    Date            `json:"fecha"`
	Detalles []InvoiceLine   `json:"detalles"`
}

// InvoiceClient resumen del cliente embebido en Invoice.
type InvoiceClient struct {
	ID     int64  `json:"id"`
	Nombre string `json:"nombre"`
	DPI    string `json:"dpi"`
}

// InvoiceLine línea de venta con descripción, marca y color del producto.
type InvoiceLine struct {
	CodPro              string          `json:"cod_pro"`
	Cantidad            int             `json:"cantidad"`
	Precio              decimal.Decimal `json:"precio"`
	ProductoDescripcion string          `json:"producto_descripcion"`
	Marca               string          `json:"marca"`
	Color               string          `json:"color"`
}

// Subtotal cantidad × precio unitario.
func (l InvoiceLine) Subtotal() decimal.Decimal {
	return l.Precio.Mul(decimal.NewFromInt(int64(l.Cantidad)))
}
