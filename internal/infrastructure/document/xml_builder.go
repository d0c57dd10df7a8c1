// Package document construye la representación XML de una venta.
package document

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/ventas-api/internal/application/billing"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// NsVenta namespace por defecto del documento.
const NsVenta = "urn:ventas-api:venta:1"

var _ billing.InvoiceXMLBuilder = (*XMLBuilderService)(nil)

// XMLBuilderService construye el XML de la venta y su digest.
type XMLBuilderService struct{}

// NewXMLBuilderService crea el servicio.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// BuildInvoiceXML devuelve el documento indentado y el SHA-256 (base64) de su forma canónica C14N.
func (s *XMLBuilderService) BuildInvoiceXML(inv *entity.Invoice, issuer *entity.IssuerConfig) ([]byte, string, error) {
	if inv == nil || issuer == nil {
		return nil, "", fmt.Errorf("xml: faltan venta o emisor")
	}

	doc := etree.NewDocument()
	root := doc.CreateElement("Venta")
	root.CreateAttr("xmlns", NsVenta)
	root.CreateAttr("Id", fmt.Sprintf("venta-%d", inv.VentaID))

	emisor := root.CreateElement("Emisor")
	text(emisor, "RUC", issuer.RUC)
	text(emisor, "Nombre", issuer.Nombre)
	text(emisor, "Telefono", issuer.Telefono)
	text(emisor, "Direccion", issuer.Direccion)
	text(emisor, "RazonSocial", issuer.Razon)

	cliente := root.CreateElement("Cliente")
	cliente.CreateAttr("id", strconv.FormatInt(inv.Cliente.ID, 10))
	text(cliente, "Nombre", inv.Cliente.Nombre)
	text(cliente, "DPI", inv.Cliente.DPI)

	text(root, "Vendedor", strconv.FormatInt(inv.Vendedor, 10))
	text(root, "Fecha", inv.Fecha.String())

	detalles := root.CreateElement("Detalles")
	for i, l := range inv.Detalles {
		linea := detalles.CreateElement("Linea")
		linea.CreateAttr("numero", strconv.Itoa(i+1))
		text(linea, "CodPro", l.CodPro)
		text(linea, "Descripcion", l.ProductoDescripcion)
		text(linea, "Marca", l.Marca)
		text(linea, "Color", l.Color)
		text(linea, "Cantidad", strconv.Itoa(l.Cantidad))
		text(linea, "PrecioUnitario", l.Precio.StringFixed(2))
		text(linea, "Subtotal", l.Subtotal().StringFixed(2))
	}

	text(root, "Total", inv.Total.StringFixed(2))

	doc.Indent(2)
	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("xml: serializar: %w", err)
	}

	// El digest cubre solo el elemento raíz; la declaración XML no forma parte de C14N.
	digest, err := Digest(body)
	if err != nil {
		return nil, "", err
	}
	return append([]byte(xml.Header), body...), digest, nil
}

// Digest calcula el SHA-256 en base64 de la forma canónica C14N del documento.
// Dos documentos equivalentes (orden de atributos, comillas) producen el mismo digest.
func Digest(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("xml: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func text(parent *etree.Element, tag, value string) *etree.Element {
	el := parent.CreateElement(tag)
	el.SetText(value)
	return el
}
