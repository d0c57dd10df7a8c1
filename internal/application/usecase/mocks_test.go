package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

type crudRepoMock[T any] struct {
	mock.Mock
}

func (m *crudRepoMock[T]) Create(ctx context.Context, e *T) error {
	return m.Called(ctx, e).Error(0)
}

func (m *crudRepoMock[T]) List(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*T)
	return list, args.Error(1)
}

func (m *crudRepoMock[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*T)
	return e, args.Error(1)
}

func (m *crudRepoMock[T]) Update(ctx context.Context, id int64, e *T) (int64, error) {
	args := m.Called(ctx, id, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *crudRepoMock[T]) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

type productRepoMock struct {
	crudRepoMock[entity.Product]
}

func (m *productRepoMock) GetByCodigo(ctx context.Context, codigo string) (*entity.Product, error) {
	args := m.Called(ctx, codigo)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

type saleRepoMock struct {
	crudRepoMock[entity.Sale]
}

func (m *saleRepoMock) MaxID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
