package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMovementRequest body para POST /api/v1/stock/movements.
// in: target_warehouse_id; out: source_warehouse_id; transfer: ambos y distintos.
type CreateMovementRequest struct {
	MovementType      string          `json:"movement_type" validate:"required,oneof=in out transfer"`
	Quantity          decimal.Decimal `json:"quantity" validate:"gt=0"`
	Note              string          `json:"note"`
	ProductID         int64           `json:"product_id" validate:"required,gt=0"`
	SourceWarehouseID *int64          `json:"source_warehouse_id" validate:"omitempty,gt=0"`
	TargetWarehouseID *int64          `json:"target_warehouse_id" validate:"omitempty,gt=0"`
}

// MovementResponse salida de un movimiento del libro.
type MovementResponse struct {
	ID                int64           `json:"id"`
	MovementType      string          `json:"movement_type"`
	Quantity          decimal.Decimal `json:"quantity"`
	Note              string          `json:"note"`
	ProductID         int64           `json:"product_id"`
	SourceWarehouseID *int64          `json:"source_warehouse_id"`
	TargetWarehouseID *int64          `json:"target_warehouse_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

// StockQuery filtros opcionales de listados de movimientos y saldos.
type StockQuery struct {
	ProductID   *int64
	WarehouseID *int64
}

// BalanceResponse saldo derivado de un producto en una bodega.
type BalanceResponse struct {
	ProductID     int64           `json:"product_id"`
	WarehouseID   *int64          `json:"warehouse_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	ProductName   string          `json:"product_name"`
	WarehouseName string          `json:"warehouse_name"`
}
