package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores por defecto de un producto nuevo.
const (
	DefaultUnit     = "adet"
	DefaultCurrency = "TRY"
)

// Product representa un producto o SKU referenciado por los movimientos de stock.
// El núcleo nunca lo modifica; solo lo consulta para validar referencias.
type Product struct {
	ID             int64
	Name           string
	SKU            string
	Category       string
	Unit           string
	Currency       string
	Price          decimal.Decimal // precio de venta, >= 0
	TrackInventory bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
