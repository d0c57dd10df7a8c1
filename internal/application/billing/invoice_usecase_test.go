package billing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-api/internal/application/billing"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// ---------------------------------------------------------------------------
// Fakes
// ---------------------------------------------------------------------------

type fakeInvoiceRepo struct {
	rows []entity.InvoiceRow
	err  error
}

func (f *fakeInvoiceRepo) ListRows(context.Context) ([]entity.InvoiceRow, error) {
	return f.rows, f.err
}

func (f *fakeInvoiceRepo) ListRowsBySale(_ context.Context, saleID int64) ([]entity.InvoiceRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.InvoiceRow
	for _, r := range f.rows {
		if r.VentaID == saleID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeIssuerRepo struct {
	byID  map[int64]*entity.IssuerConfig
	first *entity.IssuerConfig
}

func (f *fakeIssuerRepo) GetByID(_ context.Context, id int64) (*entity.IssuerConfig, error) {
	return f.byID[id], nil
}

func (f *fakeIssuerRepo) First(context.Context) (*entity.IssuerConfig, error) {
	return f.first, nil
}

type recordingRenderer struct {
	issuer *entity.IssuerConfig
	inv    *entity.Invoice
}

func (r *recordingRenderer) GenerateInvoicePDF(inv *entity.Invoice, issuer *entity.IssuerConfig) ([]byte, error) {
	r.inv, r.issuer = inv, issuer
	return []byte("%PDF-1.3"), nil
}

func (r *recordingRenderer) BuildInvoiceXML(inv *entity.Invoice, issuer *entity.IssuerConfig) ([]byte, string, error) {
	r.inv, r.issuer = inv, issuer
	return []byte("<Venta/>"), "digest", nil
}

func newInvoiceUseCase(repo *fakeInvoiceRepo, issuers *fakeIssuerRepo, issuerID int64) (*billing.InvoiceUseCase, *recordingRenderer) {
	r := &recordingRenderer{}
	return billing.NewInvoiceUseCase(repo, issuers, issuerID, r, r, logger.Nop()), r
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestInvoiceUseCase_ListErrorNoDevuelveParciales(t *testing.T) {
	uc, _ := newInvoiceUseCase(&fakeInvoiceRepo{
		rows: []entity.InvoiceRow{row(1, entity.NewDate(2024, time.May, 1), "A1", "x")},
		err:  errors.New("conexión perdida"),
	}, &fakeIssuerRepo{}, 0)

	docs, err := uc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStore)
	assert.Nil(t, docs)
}

func TestInvoiceUseCase_GetBySale(t *testing.T) {
	f := entity.NewDate(2024, time.May, 1)
	uc, _ := newInvoiceUseCase(&fakeInvoiceRepo{rows: []entity.InvoiceRow{
		row(1, f, "A1", "x"), row(2, f, "B2", "y"), row(1, f, "C3", "z"),
	}}, &fakeIssuerRepo{}, 0)

	inv, err := uc.GetBySale(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, inv.Detalles, 2)

	_, err = uc.GetBySale(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound, "una venta sin líneas no tiene documento")
}

func TestInvoiceUseCase_PDFUsaPrimerEmisor(t *testing.T) {
	f := entity.NewDate(2024, time.May, 1)
	issuers := &fakeIssuerRepo{first: &entity.IssuerConfig{ID: 1, Nombre: "Tienda"}}
	uc, r := newInvoiceUseCase(&fakeInvoiceRepo{rows: []entity.InvoiceRow{row(5, f, "A1", "x")}}, issuers, 0)

	b, name, err := uc.PDF(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "venta_5.pdf", name)
	assert.Equal(t, []byte("%PDF-1.3"), b)
	assert.Equal(t, "Tienda", r.issuer.Nombre)
	assert.Equal(t, int64(5), r.inv.VentaID)
}

func TestInvoiceUseCase_XMLEmisorConfigurado(t *testing.T) {
	f := entity.NewDate(2024, time.May, 1)
	issuers := &fakeIssuerRepo{
		first: &entity.IssuerConfig{ID: 1, Nombre: "Primero"},
		byID:  map[int64]*entity.IssuerConfig{3: {ID: 3, Nombre: "Sucursal"}},
	}
	uc, r := newInvoiceUseCase(&fakeInvoiceRepo{rows: []entity.InvoiceRow{row(5, f, "A1", "x")}}, issuers, 3)

	_, digest, err := uc.XML(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "digest", digest)
	assert.Equal(t, "Sucursal", r.issuer.Nombre)
}

func TestInvoiceUseCase_SinEmisorUsaVacio(t *testing.T) {
	f := entity.NewDate(2024, time.May, 1)
	uc, r := newInvoiceUseCase(&fakeInvoiceRepo{rows: []entity.InvoiceRow{row(5, f, "A1", "x")}}, &fakeIssuerRepo{}, 0)

	_, _, err := uc.PDF(context.Background(), 5)
	require.NoError(t, err)
	require.NotNil(t, r.issuer)
	assert.Empty(t, r.issuer.Nombre)

	_, _, err = uc.PDF(context.Background(), 6)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
