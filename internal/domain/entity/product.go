package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo (tabla productos).
// Codigo es la llave de negocio; su unicidad la garantiza (o no) la base de datos.
type Product struct {
	ID          int64           `json:"id"`
	Codigo      string          `json:"codigo"`
	Descripcion string          `json:"descripcion"`
	Proveedor   string          `json:"proveedor"` // nombre del proveedor, no una llave foránea
	Marca       string          `json:"marca"`
	Color       string          `json:"color"`
	Stock       int             `json:"stock"`
	Precio      decimal.Decimal `json:"precio"`
}
