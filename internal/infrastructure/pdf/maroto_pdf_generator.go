// Package pdf genera la representación imprimible de una venta.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Emisor + RUC         │  N° Venta + Fecha           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMISOR: Dirección / Tel / Razón social                     │
//	│  CLIENTE: Nombre + DPI + vendedor                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Cant | Descripción | P.Unit | Subtotal     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL                                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + leyenda                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/ventas-api/internal/application/billing"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ billing.InvoicePDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.InvoicePDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	money *message.Printer
}

// NewMarotoPDFGenerator construye el generador. Los montos se formatean en español (1.234,50).
func NewMarotoPDFGenerator() *MarotoPDFGenerator {
	return &MarotoPDFGenerator{money: message.NewPrinter(language.Spanish)}
}

// GenerateInvoicePDF genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(inv *entity.Invoice, issuer *entity.IssuerConfig) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Venta %d", inv.VentaID), true).
		WithAuthor(nonEmpty(issuer.Nombre, "ventas-api"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(inv, issuer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emisorRow(issuer))
	m.AddRows(clienteRow(inv))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(g.tableDetailRows(inv.Detalles)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.totalsRow(inv))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(g.footerRow(inv))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(inv *entity.Invoice, issuer *entity.IssuerConfig) core.Row {
	fecha := "-"
	if !inv.Fecha.IsZero() {
		fecha = inv.Fecha.Format("02/01/2006")
	}

	return row.New(18).Add(
		col.New(7).Add(
			text.New(nonEmpty(issuer.Nombre, "-"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RUC: "+nonEmpty(issuer.RUC, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE VENTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %06d", inv.VentaID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func emisorRow(issuer *entity.IssuerConfig) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATOS DEL EMISOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Dirección: %s   |   Tel: %s   |   Razón social: %s",
				nonEmpty(issuer.Direccion, "-"),
				nonEmpty(issuer.Telefono, "-"),
				nonEmpty(issuer.Razon, "-"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func clienteRow(inv *entity.Invoice) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(inv.Cliente.Nombre, "Consumidor final"), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("DPI: %s   |   Cliente N° %d   |   Vendedor N° %d",
				nonEmpty(inv.Cliente.DPI, "-"), inv.Cliente.ID, inv.Vendedor,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Código", 2, align.Left),
		h("Cant.", 1, align.Center),
		h("Descripción", 4, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

func (g *MarotoPDFGenerator) tableDetailRows(lines []entity.InvoiceLine) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(l.CodPro, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(1).Add(text.New(fmt.Sprint(l.Cantidad), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(4).Add(text.New(describe(l), props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(g.formatMoney(l.Precio), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(g.formatMoney(l.Subtotal()), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return result
}

// totalsRow muestra la suma de líneas y el total registrado en la venta.
// Pueden diferir: el total lo guarda quien crea la venta.
func (g *MarotoPDFGenerator) totalsRow(inv *entity.Invoice) core.Row {
	sum := decimal.Zero
	for _, l := range inv.Detalles {
		sum = sum.Add(l.Subtotal())
	}
	label := func(s string, grand bool) core.Component {
		p := props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}
		if grand {
			p.Size, p.Color, p.Top = 10, colorPrimary, 6
		}
		return text.New(s, p)
	}
	value := func(s string, grand bool) core.Component {
		p := props.Text{Size: 9, Align: align.Right, Right: 1}
		if grand {
			p.Style, p.Size, p.Color, p.Top = fontstyle.Bold, 10, colorPrimary, 6
		}
		return text.New(s, p)
	}

	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(label("Suma de líneas:", false), label("TOTAL:", true)),
		col.New(3).Add(value(g.formatMoney(sum), false), value(g.formatMoney(inv.Total), true)),
	)
}

func (g *MarotoPDFGenerator) footerRow(inv *entity.Invoice) core.Row {
	qr := fmt.Sprintf("venta=%d;cliente=%d;total=%s;fecha=%s",
		inv.VentaID, inv.Cliente.ID, inv.Total.StringFixed(2), inv.Fecha.String())

	return row.New(40).Add(
		col.New(3).Add(code.NewQr(qr, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Escanee el código para verificar los datos de la venta.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("Documento sin valor fiscal", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 16, Left: 3, Color: colorPrimary,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func describe(l entity.InvoiceLine) string {
	s := l.ProductoDescripcion
	if l.Marca != "" {
		s += " · " + l.Marca
	}
	if l.Color != "" {
		s += " · " + l.Color
	}
	return s
}

// formatMoney formatea con separadores del español: 1.234.567,50.
func (g *MarotoPDFGenerator) formatMoney(d decimal.Decimal) string {
	return g.money.Sprintf("$%.2f", d.InexactFloat64())
}
