package postgres

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// Descriptores de las tablas con CRUD uniforme.
// Las columnas de texto anulables se leen como cadena vacía.

var productsTable = Table[entity.Product]{
	Name:    "productos",
	Columns: []string{"codigo", "descripcion", "proveedor", "marca", "color", "stock", "precio"},
	Select: []string{
		"COALESCE(codigo, '')", "COALESCE(descripcion, '')", "COALESCE(proveedor, '')",
		"COALESCE(marca, '')", "COALESCE(color, '')", "COALESCE(stock, 0)", "COALESCE(precio, 0)",
	},
	Values: func(p *entity.Product) []any {
		return []any{p.Codigo, p.Descripcion, p.Proveedor, p.Marca, p.Color, p.Stock, p.Precio}
	},
	Targets: func(p *entity.Product) []any {
		return []any{&p.Codigo, &p.Descripcion, &p.Proveedor, &p.Marca, &p.Color, &p.Stock, &p.Precio}
	},
	ID: func(p *entity.Product) *int64 { return &p.ID },
}

var suppliersTable = Table[entity.Supplier]{
	Name:    "proveedor",
	Columns: []string{"ruc", "nombre", "telefono", "direccion", "razon"},
	Select:  coalesceText("ruc", "nombre", "telefono", "direccion", "razon"),
	Values: func(s *entity.Supplier) []any {
		return []any{s.RUC, s.Nombre, s.Telefono, s.Direccion, s.Razon}
	},
	Targets: func(s *entity.Supplier) []any {
		return []any{&s.RUC, &s.Nombre, &s.Telefono, &s.Direccion, &s.Razon}
	},
	ID: func(s *entity.Supplier) *int64 { return &s.ID },
}

var clientsTable = Table[entity.Client]{
	Name:    "clientes",
	Columns: []string{"dpi", "nombre", "telefono", "direccion", "razon"},
	Select:  coalesceText("dpi", "nombre", "telefono", "direccion", "razon"),
	Values: func(c *entity.Client) []any {
		return []any{c.DPI, c.Nombre, c.Telefono, c.Direccion, c.Razon}
	},
	Targets: func(c *entity.Client) []any {
		return []any{&c.DPI, &c.Nombre, &c.Telefono, &c.Direccion, &c.Razon}
	},
	ID: func(c *entity.Client) *int64 { return &c.ID },
}

var issuerConfigTable = Table[entity.IssuerConfig]{
	Name:    "config",
	Columns: []string{"ruc", "nombre", "telefono", "direccion", "razon"},
	Select:  coalesceText("ruc", "nombre", "telefono", "direccion", "razon"),
	Values: func(c *entity.IssuerConfig) []any {
		return []any{c.RUC, c.Nombre, c.Telefono, c.Direccion, c.Razon}
	},
	Targets: func(c *entity.IssuerConfig) []any {
		return []any{&c.RUC, &c.Nombre, &c.Telefono, &c.Direccion, &c.Razon}
	},
	ID: func(c *entity.IssuerConfig) *int64 { return &c.ID },
}

var salesTable = Table[entity.Sale]{
	Name:    "ventas",
	Columns: []string{"cliente", "vendedor", "total", "fecha"},
	Select:  []string{"COALESCE(cliente, 0)", "COALESCE(vendedor, 0)", "COALESCE(total, 0)", "fecha"},
	Values: func(s *entity.Sale) []any {
		return []any{s.Cliente, s.Vendedor, s.Total, s.Fecha}
	},
	Targets: func(s *entity.Sale) []any {
		return []any{&s.Cliente, &s.Vendedor, &s.Total, &s.Fecha}
	},
	ID: func(s *entity.Sale) *int64 { return &s.ID },
}

var saleDetailsTable = Table[entity.SaleDetail]{
	Name:    "detalle",
	Columns: []string{"cod_pro", "cantidad", "precio", "id_venta"},
	Select:  []string{"COALESCE(cod_pro, '')", "COALESCE(cantidad, 0)", "COALESCE(precio, 0)", "COALESCE(id_venta, 0)"},
	Values: func(d *entity.SaleDetail) []any {
		return []any{d.CodPro, d.Cantidad, d.Precio, d.IDVenta}
	},
	Targets: func(d *entity.SaleDetail) []any {
		return []any{&d.CodPro, &d.Cantidad, &d.Precio, &d.IDVenta}
	},
	ID: func(d *entity.SaleDetail) *int64 { return &d.ID },
}

func coalesceText(cols ...string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = "COALESCE(" + c + ", '')"
	}
	return out
}

// NewSupplierRepository CRUD de proveedores.
func NewSupplierRepository(q Querier) *CRUDRepo[entity.Supplier] {
	return NewCRUDRepository(q, suppliersTable)
}

// NewClientRepository CRUD de clientes.
func NewClientRepository(q Querier) *CRUDRepo[entity.Client] {
	return NewCRUDRepository(q, clientsTable)
}

// NewSaleDetailRepository CRUD de líneas de venta.
func NewSaleDetailRepository(q Querier) *CRUDRepo[entity.SaleDetail] {
	return NewCRUDRepository(q, saleDetailsTable)
}
