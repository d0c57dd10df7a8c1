package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain"
)

var productMessages = Messages{
	NotFound: "Producto no encontrado",
	Updated:  "Producto actualizado exitosamente",
	Deleted:  "Producto eliminado exitosamente",
}

// ProductHandler maneja las rutas propias de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// GetByCodigo godoc
// @Summary      Obtener producto por código
// @Tags         productos
// @Produce      json
// @Param        codigo  path  string  true  "Código del producto"
// @Success      200  {object}  entity.Product
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /productos/codigo/{codigo} [get]
func (h *ProductHandler) GetByCodigo(c *fiber.Ctx) error {
	// Fiber entrega el parámetro sin decodificar ("C%C3%93D%2001").
	codigo, err := url.PathUnescape(c.Params("codigo"))
	if err != nil {
		return writeError(c, domain.ErrNotFound, productMessages.NotFound)
	}
	out, err := h.uc.GetByCodigo(c.UserContext(), codigo)
	if err != nil {
		return writeError(c, err, productMessages.NotFound)
	}
	return c.JSON(out)
}
