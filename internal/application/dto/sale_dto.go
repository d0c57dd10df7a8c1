package dto

// MaxIDResponse mayor id de ventas (0 si no hay ventas). Valor consultivo.
type MaxIDResponse struct {
	MaximoIDVenta int64 `json:"maximo_id_venta"`
}
