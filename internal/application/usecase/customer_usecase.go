package usecase

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mtn-stock-api/internal/application/dto"
	"github.com/jhoicas/mtn-stock-api/internal/domain"
	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
	"github.com/jhoicas/mtn-stock-api/internal/domain/repository"
	"github.com/jhoicas/mtn-stock-api/pkg/money"
)

// CustomerUseCase casos de uso para clientes y su cuenta corriente.
type CustomerUseCase struct {
	txRunner repository.TxRunner
	repo     repository.CustomerRepository
	accounts repository.AccountRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(
	txRunner repository.TxRunner,
	repo repository.CustomerRepository,
	accounts repository.AccountRepository,
) *CustomerUseCase {
	return &CustomerUseCase{txRunner: txRunner, repo: repo, accounts: accounts}
}

// Create crea el cliente y, en la misma transacción, su cuenta con saldo cero.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewInvalidRequest("name es requerido")
	}
	currency, err := money.NormalizeCurrency(in.Currency, entity.DefaultCurrency)
	if err != nil {
		return nil, domain.NewInvalidRequest(err.Error())
	}
	customer := &entity.Customer{
		Name:      name,
		Title:     in.Title,
		Phone:     in.Phone,
		Email:     in.Email,
		TaxOffice: in.TaxOffice,
		TaxNumber: in.TaxNumber,
		Currency:  currency,
		Notes:     in.Notes,
	}
	err = uc.txRunner.Run(ctx, func(r repository.Repos) error {
		if err := r.Customers.Create(ctx, customer); err != nil {
			return err
		}
		return r.Accounts.Create(ctx, &entity.Account{CustomerID: customer.ID, Balance: decimal.Zero})
	})
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id int64) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.NewNotFound(domain.EntityCustomer, id)
	}
	return toCustomerResponse(customer), nil
}

// GetAccount obtiene la cuenta del cliente.
func (uc *CustomerUseCase) GetAccount(ctx context.Context, customerID int64) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.NewNotFound(domain.EntityAccount, customerID)
	}
	return &dto.AccountResponse{
		ID:         account.ID,
		CustomerID: account.CustomerID,
		Balance:    account.Balance,
		CreatedAt:  account.CreatedAt,
	}, nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CustomerListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Title:     c.Title,
		Phone:     c.Phone,
		Email:     c.Email,
		TaxOffice: c.TaxOffice,
		TaxNumber: c.TaxNumber,
		Currency:  c.Currency,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
	}
}
