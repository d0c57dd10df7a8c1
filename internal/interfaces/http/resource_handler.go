package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/dto"
)

// ResourceService operaciones CRUD que expone un recurso.
type ResourceService[T any] interface {
	Create(ctx context.Context, e *T) (*T, error)
	List(ctx context.Context) ([]*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Update(ctx context.Context, id int64, e *T) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Messages textos de respuesta de un recurso.
type Messages struct {
	NotFound string // "Producto no encontrado"
	Updated  string // "Producto actualizado exitosamente"
	Deleted  string // "Producto eliminado exitosamente"
}

// ResourceHandler maneja los cinco verbos CRUD de un recurso.
type ResourceHandler[T any] struct {
	svc ResourceService[T]
	msg Messages
}

// NewResourceHandler construye el handler.
func NewResourceHandler[T any](svc ResourceService[T], msg Messages) *ResourceHandler[T] {
	return &ResourceHandler[T]{svc: svc, msg: msg}
}

// Register monta POST /, GET /, GET /:id, PUT /:id y DELETE /:id sobre r.
// Las rutas específicas del recurso deben registrarse antes.
func (h *ResourceHandler[T]) Register(r fiber.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/:id", h.GetByID)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

// Create responde 201 con la entidad y el id asignado.
func (h *ResourceHandler[T]) Create(c *fiber.Ctx) error {
	in := new(T)
	if err := c.BodyParser(in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, h.msg.NotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List responde 200 con todas las filas ([] si no hay).
func (h *ResourceHandler[T]) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, h.msg.NotFound)
	}
	return c.JSON(out)
}

// GetByID responde 200, 404 o 500.
func (h *ResourceHandler[T]) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err, h.msg.NotFound)
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, h.msg.NotFound)
	}
	return c.JSON(out)
}

// Update reemplaza la fila; 404 si no existe.
func (h *ResourceHandler[T]) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err, h.msg.NotFound)
	}
	in := new(T)
	if err := c.BodyParser(in); err != nil {
		return invalidBody(c)
	}
	n, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err, h.msg.NotFound)
	}
	return c.JSON(dto.MessageResponse{Mensaje: h.msg.Updated, FilasAfectadas: n})
}

// Delete elimina la fila; 404 si no existe.
func (h *ResourceHandler[T]) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err, h.msg.NotFound)
	}
	n, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, h.msg.NotFound)
	}
	return c.JSON(dto.MessageResponse{Mensaje: h.msg.Deleted, FilasAfectadas: n})
}
