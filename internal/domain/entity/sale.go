package entity

import "github.com/shopspring/decimal"

// Sale cabecera de venta (tabla ventas).
type Sale struct {
	ID       int64           `json:"id"`
	Cliente  int64           `json:"cliente"`  // id del cliente
	Vendedor int64           `json:"vendedor"` // id del vendedor
	Total    decimal.Decimal `json:"total"`
	Fecha    Date            `json:"fecha"`
}

// SaleDetail línea de venta (tabla detalle). Precio es el precio unitario al momento de la venta.
type SaleDetail struct {
	ID       int64           `json:"id"`
	CodPro   string          `json:"cod_pro"`
	Cantidad int             `json:"cantidad"`
	Precio   decimal.Decimal `json:"precio"`
	IDVenta  int64           `json:"id_venta"`
}
