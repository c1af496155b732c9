package entity

import "github.com/shopspring/decimal"

// StockBalance cantidad neta derivada de un producto en una bodega.
// No se persiste: se recalcula en cada consulta a partir de los movimientos.
type StockBalance struct {
	ProductID     int64
	WarehouseID   *int64
	Quantity      decimal.Decimal
	ProductName   string
	WarehouseName string
}
