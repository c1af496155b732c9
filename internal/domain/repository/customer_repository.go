package repository

import (
	"context"

	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
}

// AccountRepository define el puerto de persistencia para Account (1:1 con Customer).
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByCustomerID(ctx context.Context, customerID int64) (*entity.Account, error)
}
