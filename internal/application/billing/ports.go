package billing

import (
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// InvoicePDFGenerator genera la representación imprimible de una venta.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(inv *entity.Invoice, issuer *entity.IssuerConfig) ([]byte, error)
}

// InvoiceXMLBuilder genera el XML de una venta y el digest de su forma canónica.
type InvoiceXMLBuilder interface {
	BuildInvoiceXML(inv *entity.Invoice, issuer *entity.IssuerConfig) (doc []byte, digest string, err error)
}
