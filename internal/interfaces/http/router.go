package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/auth"
	"github.com/jhoicas/ventas-api/internal/application/billing"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/application/usecase"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ServiceName string
	ProductUC   *usecase.ProductUseCase
	SupplierUC  *usecase.ResourceUseCase[entity.Supplier]
	ClientUC    *usecase.ResourceUseCase[entity.Client]
	ConfigUC    *usecase.ResourceUseCase[entity.IssuerConfig]
	SaleUC      *usecase.SaleUseCase
	DetailUC    *usecase.ResourceUseCase[entity.SaleDetail]
	InvoiceUC   *billing.InvoiceUseCase
	AuthUC      *auth.AuthUseCase
	Metrics     *Metrics // opcional
	OpenAPI     func() (string, error)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics.Handler())
	}
	if deps.OpenAPI != nil {
		app.Get("/openapi.json", func(c *fiber.Ctx) error {
			doc, err := deps.OpenAPI()
			if err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "documento OpenAPI no disponible")
			}
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
			return c.SendString(doc)
		})
	}

	// Productos
	productos := app.Group("/productos")
	productos.Get("/codigo/:codigo", NewProductHandler(deps.ProductUC).GetByCodigo)
	NewResourceHandler[entity.Product](deps.ProductUC, productMessages).Register(productos)

	// Proveedores
	NewResourceHandler[entity.Supplier](deps.SupplierUC, Messages{
		NotFound: "Proveedor no encontrado",
		Updated:  "Proveedor actualizado exitosamente",
		Deleted:  "Proveedor eliminado exitosamente",
	}).Register(app.Group("/proveedores"))

	// Clientes
	NewResourceHandler[entity.Client](deps.ClientUC, Messages{
		NotFound: "Cliente no encontrado",
		Updated:  "Cliente actualizado exitosamente",
		Deleted:  "Cliente eliminado exitosamente",
	}).Register(app.Group("/clientes"))

	// Configuración del emisor
	NewResourceHandler[entity.IssuerConfig](deps.ConfigUC, Messages{
		NotFound: "Configuración no encontrada",
		Updated:  "Configuración actualizada exitosamente",
		Deleted:  "Configuración eliminada exitosamente",
	}).Register(app.Group("/config"))

	// Ventas: /maximo-id antes de /:id
	ventas := app.Group("/ventas")
	ventas.Get("/maximo-id", NewSaleHandler(deps.SaleUC).MaxID)
	NewResourceHandler[entity.Sale](deps.SaleUC, saleMessages).Register(ventas)

	// Detalle de ventas
	NewResourceHandler[entity.SaleDetail](deps.DetailUC, Messages{
		NotFound: "Detalle no encontrado",
		Updated:  "Detalle actualizado exitosamente",
		Deleted:  "Detalle eliminado exitosamente",
	}).Register(app.Group("/detalle"))

	// Facturaciones
	facturaciones := app.Group("/facturaciones")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	facturaciones.Get("/", invoiceHandler.List)
	facturaciones.Get("/:id", invoiceHandler.GetByID)
	facturaciones.Get("/:id/pdf", invoiceHandler.PDF)
	facturaciones.Get("/:id/xml", invoiceHandler.XML)

	// Usuarios
	usuarios := app.Group("/usuarios")
	userHandler := NewUserHandler(deps.AuthUC)
	usuarios.Post("/", userHandler.Validate)
	usuarios.Post("/validar", userHandler.Validate)
}
