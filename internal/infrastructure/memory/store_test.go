package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mtn-stock-api/internal/domain"
	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
	"github.com/jhoicas/mtn-stock-api/internal/domain/repository"
	"github.com/jhoicas/mtn-stock-api/internal/infrastructure/memory"
)

func TestStore_RunRevierteSiFalla(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Run(ctx, func(r repository.Repos) error {
		require.NoError(t, r.Products.Create(ctx, &entity.Product{Name: "Panel"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := s.Repos().Products.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_MovimientosConReferenciasYFiltros(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	r := s.Repos()

	p := &entity.Product{Name: "Panel"}
	require.NoError(t, r.Products.Create(ctx, p))
	w1 := &entity.Warehouse{Name: "Ankara"}
	w2 := &entity.Warehouse{Name: "İzmir"}
	require.NoError(t, r.Warehouses.Create(ctx, w1))
	require.NoError(t, r.Warehouses.Create(ctx, w2))

	require.NoError(t, r.Movements.Create(ctx, &entity.StockMovement{
		Type: entity.MovementTypeTransfer, Quantity: decimal.NewFromInt(1), ProductID: p.ID,
		SourceWarehouseID: &w1.ID, TargetWarehouseID: &w2.ID,
	}))

	missing := int64(999)
	err := r.Movements.Create(ctx, &entity.StockMovement{
		Type: entity.MovementTypeIn, Quantity: decimal.NewFromInt(1), ProductID: p.ID, TargetWarehouseID: &missing,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := r.Movements.List(ctx, repository.MovementFilter{WarehouseID: &w2.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Panel", got[0].ProductName)
	assert.Equal(t, "Ankara", got[0].SourceWarehouseName)
	assert.Equal(t, "İzmir", got[0].TargetWarehouseName)
}

func TestStore_CuentaDuplicada(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	r := s.Repos()

	c := &entity.Customer{Name: "MTN"}
	require.NoError(t, r.Customers.Create(ctx, c))
	require.NoError(t, r.Accounts.Create(ctx, &entity.Account{CustomerID: c.ID}))
	assert.ErrorIs(t, r.Accounts.Create(ctx, &entity.Account{CustomerID: c.ID}), domain.ErrDuplicate)
	assert.ErrorIs(t, r.Accounts.Create(ctx, &entity.Account{CustomerID: 404}), domain.ErrNotFound)
}

func TestStore_CantidadQueNoCabeEnLaColumna(t *testing.T) {
	s := memory.NewStore()
	ctx := context.Background()
	r := s.Repos()

	p := &entity.Product{Name: "Panel"}
	require.NoError(t, r.Products.Create(ctx, p))
	w := &entity.Warehouse{Name: "Ankara"}
	require.NoError(t, r.Warehouses.Create(ctx, w))

	err := r.Movements.Create(ctx, &entity.StockMovement{
		Type: entity.MovementTypeIn, Quantity: decimal.RequireFromString("0.00001"), ProductID: p.ID, TargetWarehouseID: &w.ID,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
