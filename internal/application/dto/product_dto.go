package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Unit por defecto "adet", Currency "TRY", TrackInventory true.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	SKU            string          `json:"sku" validate:"max=100"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	Currency       string          `json:"currency" validate:"omitempty,len=3"`
	Price          decimal.Decimal `json:"price" validate:"gte=0"`
	TrackInventory *bool           `json:"track_inventory"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	SKU            string          `json:"sku"`
	Category       string          `json:"category"`
	Unit           string          `json:"unit"`
	Currency       string          `json:"currency"`
	Price          decimal.Decimal `json:"price"`
	TrackInventory bool            `json:"track_inventory"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
