package repository

import (
	"context"

	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
)

// MovementFilter filtros opcionales del libro de movimientos.
// WarehouseID coincide tanto con la bodega de origen como con la de destino.
type MovementFilter struct {
	ProductID   *int64
	WarehouseID *int64
}

// StockMovementRepository define el puerto de persistencia del libro de movimientos (append-only).
// No existe Update ni Delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	GetByID(ctx context.Context, id int64) (*entity.StockMovement, error)
	// List devuelve los movimientos filtrados con los nombres de producto y bodegas resueltos.
	List(ctx context.Context, filter MovementFilter) ([]*entity.StockMovement, error)
}
