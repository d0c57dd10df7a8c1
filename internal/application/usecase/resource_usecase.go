package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
	"github.com/jhoicas/ventas-api/pkg/logger"
)

// ResourceUseCase casos de uso CRUD comunes a todos los recursos de una tabla.
// Traduce "sin filas" a domain.ErrNotFound y cualquier fallo del repositorio a domain.ErrStore.
type ResourceUseCase[T any] struct {
	name string
	repo repository.CRUDRepository[T]
	log  *logger.Logger
}

// NewResourceUseCase construye el caso de uso. name identifica el recurso en los logs.
func NewResourceUseCase[T any](name string, repo repository.CRUDRepository[T], log *logger.Logger) *ResourceUseCase[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &ResourceUseCase[T]{name: name, repo: repo, log: log.Named(name)}
}

// Name nombre del recurso.
func (uc *ResourceUseCase[T]) Name() string { return uc.name }

// Create persiste e y lo devuelve con el id asignado por la base de datos.
func (uc *ResourceUseCase[T]) Create(ctx context.Context, e *T) (*T, error) {
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, uc.storeError("create", err)
	}
	return e, nil
}

// List devuelve todos los registros; con la tabla vacía devuelve un slice vacío, no nil.
func (uc *ResourceUseCase[T]) List(ctx context.Context) ([]*T, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, uc.storeError("list", err)
	}
	if list == nil {
		list = []*T{}
	}
	return list, nil
}

// GetByID devuelve domain.ErrNotFound si no existe.
func (uc *ResourceUseCase[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, uc.storeError("get", err)
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// Update reemplaza los campos del registro id. Cero filas afectadas es domain.ErrNotFound.
func (uc *ResourceUseCase[T]) Update(ctx context.Context, id int64, e *T) (int64, error) {
	n, err := uc.repo.Update(ctx, id, e)
	if err != nil {
		return 0, uc.storeError("update", err)
	}
	if n == 0 {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

// Delete elimina el registro id. Cero filas afectadas es domain.ErrNotFound.
func (uc *ResourceUseCase[T]) Delete(ctx context.Context, id int64) (int64, error) {
	n, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return 0, uc.storeError("delete", err)
	}
	if n == 0 {
		return 0, domain.ErrNotFound
	}
	return n, nil
}

// storeError registra el fallo una sola vez y lo envuelve en domain.ErrStore.
func (uc *ResourceUseCase[T]) storeError(op string, err error) error {
	uc.log.Error().Str("resource", uc.name).Str("op", op).Err(err).Msg("error ejecutando la consulta")
	return fmt.Errorf("%w: %s %s: %w", domain.ErrStore, op, uc.name, err)
}
