package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de stock. El conjunto es cerrado.
type MovementType string

const (
	MovementTypeIn       MovementType = "in"       // entrada a una bodega
	MovementTypeOut      MovementType = "out"      // salida de una bodega
	MovementTypeTransfer MovementType = "transfer" // traslado entre bodegas
)

// Valid indica si t es uno de los tipos conocidos.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeIn, MovementTypeOut, MovementTypeTransfer:
		return true
	}
	return false
}

// StockMovement es una entrada inmutable del libro de movimientos.
// Quantity siempre es positiva; el sentido lo da Type.
type StockMovement struct {
	ID                int64
	Type              MovementType
	Quantity          decimal.Decimal
	Note              string
	ProductID         int64
	SourceWarehouseID *int64
	TargetWarehouseID *int64
	CreatedAt         time.Time

	// Nombres desnormalizados (solo lectura, vienen del JOIN del listado).
	ProductName         string
	SourceWarehouseName string
	TargetWarehouseName string
}

// Cantidades y montos se guardan como NUMERIC(18,4).
const (
	DecimalScale     = 4
	decimalIntDigits = 14
)

var decimalLimit = decimal.New(1, decimalIntDigits)

// FitsNumeric indica si d se guarda sin redondeo ni desborde:
// a lo sumo DecimalScale decimales y valor absoluto menor que 10^14.
func FitsNumeric(d decimal.Decimal) bool {
	if !d.Equal(d.Truncate(DecimalScale)) {
		return false
	}
	return d.Abs().LessThan(decimalLimit)
}
