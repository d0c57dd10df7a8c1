package usecase

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// SaleUseCase CRUD de ventas más el id máximo.
type SaleUseCase struct {
	*ResourceUseCase[entity.Sale]
	repo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(repo repository.SaleRepository, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{
		ResourceUseCase: NewResourceUseCase[entity.Sale]("ventas", repo, log),
		repo:            repo,
	}
}

// MaxID devuelve el mayor id de ventas (0 sin ventas). Puede quedar obsoleto en cuanto
// otra petición crea una venta: usar el id devuelto por Create en su lugar.
func (uc *SaleUseCase) MaxID(ctx context.Context) (int64, error) {
	id, err := uc.repo.MaxID(ctx)
	if err != nil {
		return 0, uc.storeError("max id", err)
	}
	return id, nil
}
