package entity

import "time"

// Warehouse representa una bodega; los movimientos la referencian como origen y/o destino.
type Warehouse struct {
	ID        int64
	Name      string
	Location  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
