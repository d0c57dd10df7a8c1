package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		VentaID:  12,
		Cliente:  entity.InvoiceClient{ID: 3, Nombre: "Ana López", DPI: "2546 78901 0101"},
		Vendedor: 1,
		Total:    decimal.RequireFromString("1250.50"),
		Fecha:    entity.NewDate(2024, time.March, 15),
		Detalles: []entity.InvoiceLine{
			{CodPro: "A1", Cantidad: 2, Precio: decimal.RequireFromString("500.25"), ProductoDescripcion: "Chaqueta", Marca: "Norte", Color: "Negro"},
			{CodPro: "B2", Cantidad: 1, Precio: decimal.NewFromInt(250), ProductoDescripcion: "Gorra"},
		},
	}
}

func TestGenerateInvoicePDF_DevuelvePDF(t *testing.T) {
	g := NewMarotoPDFGenerator()

	b, err := g.GenerateInvoicePDF(sampleInvoice(), &entity.IssuerConfig{RUC: "1234567-8", Nombre: "Tienda Central"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF")), "los bytes deben ser un PDF")
}

func TestGenerateInvoicePDF_EmisorVacio(t *testing.T) {
	inv := sampleInvoice()
	inv.Fecha = entity.Date{}

	b, err := NewMarotoPDFGenerator().GenerateInvoicePDF(inv, &entity.IssuerConfig{})
	require.NoError(t, err)
	assert.NotEmpty(t, b)
}

func TestFormatMoney_Espanol(t *testing.T) {
	g := NewMarotoPDFGenerator()
	assert.Equal(t, "$1.234.567,50", g.formatMoney(decimal.RequireFromString("1234567.5")))
	assert.Equal(t, "$0,00", g.formatMoney(decimal.Zero))
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Chaqueta · Norte · Negro", describe(entity.InvoiceLine{ProductoDescripcion: "Chaqueta", Marca: "Norte", Color: "Negro"}))
	assert.Equal(t, "Gorra", describe(entity.InvoiceLine{ProductoDescripcion: "Gorra"}))
}
