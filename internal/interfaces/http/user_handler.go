package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
)

// UserHandler validación de credenciales.
type UserHandler struct {
	uc *auth.AuthUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *auth.AuthUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Validate godoc
// @Summary      Validar usuario y contraseña
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ValidateUserRequest  true  "Credenciales"
// @Success      200   {object}  dto.ValidateUserResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /usuarios [post]
func (h *UserHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateUserRequest
	if err := c.BodyParser(&in); err != nil {
		// Sin credenciales legibles ninguna fila puede coincidir.
		return writeError(c, domain.ErrUnauthorized, "")
	}
	out, err := h.uc.Validate(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, "")
	}
	return c.JSON(out)
}
