package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ventas-api/internal/application/billing"
)

const invoiceNotFound = "Venta no encontrada o sin detalle"

// InvoiceHandler documentos de facturación.
type InvoiceHandler struct {
	uc *billing.InvoiceUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List godoc
// @Summary      Ventas con cliente y detalle
// @Description  Una entrada por venta con al menos una línea, de la más reciente a la más antigua.
// @Tags         facturaciones
// @Produce      json
// @Success      200  {array}   entity.Invoice
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /facturaciones [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err, invoiceNotFound)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Documento de una venta
// @Tags         facturaciones
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  entity.Invoice
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /facturaciones/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err, invoiceNotFound)
	}
	out, err := h.uc.GetBySale(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, invoiceNotFound)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Comprobante PDF de una venta
// @Tags         facturaciones
// @Produce      application/pdf
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /facturaciones/{id}/pdf [get]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err, invoiceNotFound)
	}
	b, filename, err := h.uc.PDF(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, invoiceNotFound)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
	return c.Send(b)
}

// XML godoc
// @Summary      XML de una venta
// @Description  X-Documento-Digest: SHA-256 en base64 de la forma canónica (C14N) del documento.
// @Tags         facturaciones
// @Produce      application/xml
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {string}  string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /facturaciones/{id}/xml [get]
func (h *InvoiceHandler) XML(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return writeError(c, err, invoiceNotFound)
	}
	b, digest, err := h.uc.XML(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, invoiceNotFound)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(HeaderDocumentDigest, digest)
	return c.Send(b)
}

// HeaderDocumentDigest cabecera con el digest del XML.
const HeaderDocumentDigest = "X-Documento-Digest"
