package repository

import "context"

// Repos repositorios atados a una misma transacción.
type Repos struct {
	Customers  CustomerRepository
	Accounts   AccountRepository
	Products   ProductRepository
	Warehouses WarehouseRepository
	Movements  StockMovementRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback si no.
// Es el único límite de atomicidad (un movimiento es visible completo o no lo es).
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}
