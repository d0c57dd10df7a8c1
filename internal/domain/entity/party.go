package entity

// Supplier proveedor (tabla proveedor).
type Supplier struct {
	ID        int64  `json:"id"`
	RUC       string `json:"ruc"`
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Razon     string `json:"razon"` // razón social
}

// Client cliente (tabla clientes). DPI es el documento de identidad.
type Client struct {
	ID        int64  `json:"id"`
	DPI       string `json:"dpi"`
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Razon     string `json:"razon"`
}

// IssuerConfig datos del emisor de las facturas (tabla config).
type IssuerConfig struct {
	ID        int64  `json:"id"`
	RUC       string `json:"ruc"`
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
	Razon     string `json:"razon"`
}
