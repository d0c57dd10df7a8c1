package usecase

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// ProductUseCase CRUD de productos más la búsqueda por código.
type ProductUseCase struct {
	*ResourceUseCase[entity.Product]
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		ResourceUseCase: NewResourceUseCase[entity.Product]("productos", repo, log),
		repo:            repo,
	}
}

// GetByCodigo busca por la llave de negocio. Devuelve domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByCodigo(ctx context.Context, codigo string) (*entity.Product, error) {
	p, err := uc.repo.GetByCodigo(ctx, codigo)
	if err != nil {
		return nil, uc.storeError("get by codigo", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}
