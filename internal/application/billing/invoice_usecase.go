package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// InvoiceUseCase documentos de facturación: ventas con cliente y líneas enriquecidas.
type InvoiceUseCase struct {
	invoiceRepo repository.InvoiceRepository
	issuerRepo  repository.IssuerConfigReader
	issuerID    int64
	pdf         InvoicePDFGenerator
	xml         InvoiceXMLBuilder
	log         *logger.Logger
}

// NewInvoiceUseCase construye el caso de uso inyectando todas sus dependencias.
// issuerID = 0 usa la primera fila de config como emisor.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	issuerRepo repository.IssuerConfigReader,
	issuerID int64,
	pdf InvoicePDFGenerator,
	xml InvoiceXMLBuilder,
	log *logger.Logger,
) *InvoiceUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &InvoiceUseCase{
		invoiceRepo: invoiceRepo,
		issuerRepo:  issuerRepo,
		issuerID:    issuerID,
		pdf:         pdf,
		xml:         xml,
		log:         log.Named("facturaciones"),
	}
}

// List devuelve todas las ventas con al menos una línea, de la más reciente a la más antigua.
// Cualquier fallo de la consulta invalida el resultado completo.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]entity.Invoice, error) {
	rows, err := uc.invoiceRepo.ListRows(ctx)
	if err != nil {
		return nil, uc.storeError("list", err)
	}
	return GroupSales(rows), nil
}

// GetBySale devuelve el documento de una venta o domain.ErrNotFound si no tiene líneas.
func (uc *InvoiceUseCase) GetBySale(ctx context.Context, saleID int64) (*entity.Invoice, error) {
	rows, err := uc.invoiceRepo.ListRowsBySale(ctx, saleID)
	if err != nil {
		return nil, uc.storeError("get", err)
	}
	docs := GroupSales(rows)
	if len(docs) == 0 {
		return nil, domain.ErrNotFound
	}
	return &docs[0], nil
}

// PDF genera la representación imprimible de la venta. Devuelve bytes y nombre de archivo.
func (uc *InvoiceUseCase) PDF(ctx context.Context, saleID int64) ([]byte, string, error) {
	inv, issuer, err := uc.load(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	b, err := uc.pdf.GenerateInvoicePDF(inv, issuer)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	return b, fmt.Sprintf("venta_%d.pdf", saleID), nil
}

// XML genera el XML de la venta y el digest SHA-256 (base64) de su forma canónica.
func (uc *InvoiceUseCase) XML(ctx context.Context, saleID int64) ([]byte, string, error) {
	inv, issuer, err := uc.load(ctx, saleID)
	if err != nil {
		return nil, "", err
	}
	doc, digest, err := uc.xml.BuildInvoiceXML(inv, issuer)
	if err != nil {
		return nil, "", fmt.Errorf("xml: generación fallida: %w", err)
	}
	return doc, digest, nil
}

// load recupera la venta agregada y el emisor. Sin emisor configurado se usa uno vacío.
func (uc *InvoiceUseCase) load(ctx context.Context, saleID int64) (*entity.Invoice, *entity.IssuerConfig, error) {
	inv, err := uc.GetBySale(ctx, saleID)
	if err != nil {
		return nil, nil, err
	}

	var issuer *entity.IssuerConfig
	if uc.issuerID > 0 {
		issuer, err = uc.issuerRepo.GetByID(ctx, uc.issuerID)
	} else {
		issuer, err = uc.issuerRepo.First(ctx)
	}
	if err != nil {
		return nil, nil, uc.storeError("issuer", err)
	}
	if issuer == nil {
		uc.log.Warn().Int64("issuer_id", uc.issuerID).Msg("sin emisor en config; se imprime sin datos de emisor")
		issuer = &entity.IssuerConfig{}
	}
	return inv, issuer, nil
}

func (uc *InvoiceUseCase) storeError(op string, err error) error {
	uc.log.Error().Str("op", op).Err(err).Msg("error ejecutando la consulta")
	return fmt.Errorf("%w: facturaciones %s: %w", domain.ErrStore, op, err)
}
