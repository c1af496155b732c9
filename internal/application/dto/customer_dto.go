package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente (y su cuenta).
type CreateCustomerRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Title     string `json:"title"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	TaxOffice string `json:"tax_office"`
	TaxNumber string `json:"tax_number"`
	Currency  string `json:"currency" validate:"omitempty,len=3"`
	Notes     string `json:"notes"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Title     string    `json:"title"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	TaxOffice string    `json:"tax_office"`
	TaxNumber string    `json:"tax_number"`
	Currency  string    `json:"currency"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountResponse salida de la cuenta corriente de un cliente.
type AccountResponse struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customer_id"`
	Balance    decimal.Decimal `json:"balance"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
