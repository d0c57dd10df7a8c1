package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
)

var saleMessages = Messages{
	NotFound: "Venta no encontrada",
	Updated:  "Venta actualizada exitosamente",
	Deleted:  "Venta eliminada exitosamente",
}

// SaleHandler maneja las rutas propias de ventas.
type SaleHandler struct {
	uc *usecase.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *usecase.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// MaxID godoc
// @Summary      Id máximo de ventas (obsoleto)
// @Description  Valor consultivo: otra petición puede crear una venta en cualquier momento. POST /ventas ya devuelve el id asignado.
// @Tags         ventas
// @Produce      json
// @Success      200  {object}  dto.MaxIDResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /ventas/maximo-id [get]
// @Deprecated
func (h *SaleHandler) MaxID(c *fiber.Ctx) error {
	id, err := h.uc.MaxID(c.UserContext())
	if err != nil {
		return writeError(c, err, saleMessages.NotFound)
	}
	c.Set("Deprecation", "true")
	c.Set(fiber.HeaderLink, `</ventas>; rel="successor-version"`)
	return c.JSON(dto.MaxIDResponse{MaximoIDVenta: id})
}
