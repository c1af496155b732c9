package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer representa un cliente (contabilidad del lado de facturación).
type Customer struct {
	ID        int64
	Name      string
	Title     string
	Phone     string
	Email     string
	TaxOffice string
	TaxNumber string
	Currency  string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Account cuenta corriente del cliente. Se crea 1:1 junto con el Customer con saldo cero.
type Account struct {
	ID         int64
	CustomerID int64
	Balance    decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
