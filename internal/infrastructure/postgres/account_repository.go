package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/mtn-stock-api/internal/domain"
	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
	"github.com/jhoicas/mtn-stock-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación de AccountRepository (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste la cuenta de un cliente (una por cliente).
func (r *AccountRepo) Create(ctx context.Context, account *entity.Account) error {
	query := `
		INSERT INTO accounts (customer_id, balance)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, account.CustomerID, account.Balance).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return domain.NewNotFound(domain.EntityCustomer, account.CustomerID)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByCustomerID obtiene la cuenta del cliente. (nil, nil) si no existe.
func (r *AccountRepo) GetByCustomerID(ctx context.Context, customerID int64) (*entity.Account, error) {
	query := `
		SELECT id, customer_id, balance, created_at, updated_at
		FROM accounts WHERE customer_id = $1`
	var a entity.Account
	err := r.q.QueryRow(ctx, query, customerID).Scan(
		&a.ID, &a.CustomerID, &a.Balance, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}
