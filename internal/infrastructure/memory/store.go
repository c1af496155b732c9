// Package memory implementa los puertos de repositorio en memoria.
// Lo usan las pruebas de casos de uso y handlers en lugar de PostgreSQL.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/mtn-stock-api/internal/domain"
	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
	"github.com/jhoicas/mtn-stock-api/internal/domain/repository"
)

type state struct {
	customers  []entity.Customer
	accounts   []entity.Account
	products   []entity.Product
	warehouses []entity.Warehouse
	movements  []entity.StockMovement
	seq        int64
}

func (s state) clone() state {
	return state{
		customers:  append([]entity.Customer(nil), s.customers...),
		accounts:   append([]entity.Account(nil), s.accounts...),
		products:   append([]entity.Product(nil), s.products...),
		warehouses: append([]entity.Warehouse(nil), s.warehouses...),
		movements:  append([]entity.StockMovement(nil), s.movements...),
		seq:        s.seq,
	}
}

// Store almacén en memoria. Run serializa las transacciones y restaura el
// estado previo si fn devuelve error.
type Store struct {
	mu  sync.Mutex
	st  state
	now func() time.Time
	// FailOn, si no es nil, hace fallar la operación con ese nombre (p. ej. "movements.create").
	FailOn map[string]error
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{now: time.Now}
}

// Repos devuelve repositorios que operan fuera de transacción.
func (s *Store) Repos() repository.Repos {
	return reposFor(s, true)
}

// Run implementa repository.TxRunner.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := s.st.clone()
	if err := fn(reposFor(s, false)); err != nil {
		s.st = snapshot
		return err
	}
	return nil
}

func reposFor(s *Store, lock bool) repository.Repos {
	h := handle{s: s, lock: lock}
	return repository.Repos{
		Customers:  customers{h},
		Accounts:   accounts{h},
		Products:   products{h},
		Warehouses: warehouses{h},
		Movements:  movements{h},
	}
}

type handle struct {
	s    *Store
	lock bool
}

func (h handle) do(op string, fn func(st *state) error) error {
	if h.lock {
		h.s.mu.Lock()
		defer h.s.mu.Unlock()
	}
	if err, ok := h.s.FailOn[op]; ok {
		return err
	}
	return fn(&h.s.st)
}

func (h handle) nextID(st *state) (int64, time.Time) {
	st.seq++
	return st.seq, h.s.now().UTC()
}

func page[T any](items []T, limit, offset int) []*T {
	if offset >= len(items) {
		return []*T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]*T, 0, end-offset)
	for i := offset; i < end; i++ {
		v := items[i]
		out = append(out, &v)
	}
	return out
}

// ── clientes y cuentas ───────────────────────────────────────────────────────

type customers struct{ h handle }

func (r customers) Create(_ context.Context, c *entity.Customer) error {
	return r.h.do("customers.create", func(st *state) error {
		c.ID, c.CreatedAt = r.h.nextID(st)
		c.UpdatedAt = c.CreatedAt
		st.customers = append(st.customers, *c)
		return nil
	})
}

func (r customers) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	var out *entity.Customer
	err := r.h.do("customers.get", func(st *state) error {
		for _, c := range st.customers {
			if c.ID == id {
				v := c
				out = &v
			}
		}
		return nil
	})
	return out, err
}

func (r customers) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	err := r.h.do("customers.list", func(st *state) error {
		out = page(st.customers, limit, offset)
		return nil
	})
	return out, err
}

type accounts struct{ h handle }

func (r accounts) Create(_ context.Context, a *entity.Account) error {
	return r.h.do("accounts.create", func(st *state) error {
		found := false
		for _, c := range st.customers {
			if c.ID == a.CustomerID {
				found = true
			}
		}
		if !found {
			return domain.NewNotFound(domain.EntityCustomer, a.CustomerID)
		}
		for _, existing := range st.accounts {
			if existing.CustomerID == a.CustomerID {
				return domain.ErrDuplicate
			}
		}
		a.ID, a.CreatedAt = r.h.nextID(st)
		a.UpdatedAt = a.CreatedAt
		st.accounts = append(st.accounts, *a)
		return nil
	})
}

func (r accounts) GetByCustomerID(_ context.Context, customerID int64) (*entity.Account, error) {
	var out *entity.Account
	err := r.h.do("accounts.get", func(st *state) error {
		for _, a := range st.accounts {
			if a.CustomerID == customerID {
				v := a
				out = &v
			}
		}
		return nil
	})
	return out, err
}

// ── catálogo ─────────────────────────────────────────────────────────────────

type products struct{ h handle }

func (r products) Create(_ context.Context, p *entity.Product) error {
	return r.h.do("products.create", func(st *state) error {
		p.ID, p.CreatedAt = r.h.nextID(st)
		p.UpdatedAt = p.CreatedAt
		st.products = append(st.products, *p)
		return nil
	})
}

func (r products) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	var out *entity.Product
	err := r.h.do("products.get", func(st *state) error {
		out = findProduct(st, id)
		return nil
	})
	return out, err
}

func (r products) List(_ context.Context, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	err := r.h.do("products.list", func(st *state) error {
		out = page(st.products, limit, offset)
		return nil
	})
	return out, err
}

func findProduct(st *state, id int64) *entity.Product {
	for _, p := range st.products {
		if p.ID == id {
			v := p
			return &v
		}
	}
	return nil
}

type warehouses struct{ h handle }

func (r warehouses) Create(_ context.Context, w *entity.Warehouse) error {
	return r.h.do("warehouses.create", func(st *state) error {
		w.ID, w.CreatedAt = r.h.nextID(st)
		w.UpdatedAt = w.CreatedAt
		st.warehouses = append(st.warehouses, *w)
		return nil
	})
}

func (r warehouses) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	var out *entity.Warehouse
	err := r.h.do("warehouses.get", func(st *state) error {
		out = findWarehouse(st, id)
		return nil
	})
	return out, err
}

func (r warehouses) List(_ context.Context, limit, offset int) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	err := r.h.do("warehouses.list", func(st *state) error {
		out = page(st.warehouses, limit, offset)
		return nil
	})
	return out, err
}

func findWarehouse(st *state, id int64) *entity.Warehouse {
	for _, w := range st.warehouses {
		if w.ID == id {
			v := w
			return &v
		}
	}
	return nil
}

// ── libro de movimientos ─────────────────────────────────────────────────────

type movements struct{ h handle }

func (r movements) Create(_ context.Context, m *entity.StockMovement) error {
	return r.h.do("movements.create", func(st *state) error {
		// igual que el CHECK y la precisión de la columna en PostgreSQL
		if !m.Quantity.IsPositive() || !entity.FitsNumeric(m.Quantity) {
			return domain.ErrInvalidInput
		}
		if findProduct(st, m.ProductID) == nil {
			return domain.NewNotFound(domain.EntityProduct, m.ProductID)
		}
		if m.SourceWarehouseID != nil && findWarehouse(st, *m.SourceWarehouseID) == nil {
			return domain.NewNotFound(domain.EntitySourceWarehouse, *m.SourceWarehouseID)
		}
		if m.TargetWarehouseID != nil && findWarehouse(st, *m.TargetWarehouseID) == nil {
			return domain.NewNotFound(domain.EntityTargetWarehouse, *m.TargetWarehouseID)
		}
		m.ID, m.CreatedAt = r.h.nextID(st)
		st.movements = append(st.movements, *m)
		return nil
	})
}

func (r movements) GetByID(_ context.Context, id int64) (*entity.StockMovement, error) {
	var out *entity.StockMovement
	err := r.h.do("movements.get", func(st *state) error {
		for _, m := range st.movements {
			if m.ID == id {
				out = withNames(st, m)
			}
		}
		return nil
	})
	return out, err
}

func (r movements) List(_ context.Context, f repository.MovementFilter) ([]*entity.StockMovement, error) {
	out := []*entity.StockMovement{}
	err := r.h.do("movements.list", func(st *state) error {
		for _, m := range st.movements {
			if f.ProductID != nil && m.ProductID != *f.ProductID {
				continue
			}
			if f.WarehouseID != nil && !touches(m, *f.WarehouseID) {
				continue
			}
			out = append(out, withNames(st, m))
		}
		return nil
	})
	return out, err
}

func touches(m entity.StockMovement, warehouseID int64) bool {
	return (m.SourceWarehouseID != nil && *m.SourceWarehouseID == warehouseID) ||
		(m.TargetWarehouseID != nil && *m.TargetWarehouseID == warehouseID)
}

func withNames(st *state, m entity.StockMovement) *entity.StockMovement {
	if p := findProduct(st, m.ProductID); p != nil {
		m.ProductName = p.Name
	}
	if m.SourceWarehouseID != nil {
		if w := findWarehouse(st, *m.SourceWarehouseID); w != nil {
			m.SourceWarehouseName = w.Name
		}
	}
	if m.TargetWarehouseID != nil {
		if w := findWarehouse(st, *m.TargetWarehouseID); w != nil {
			m.TargetWarehouseName = w.Name
		}
	}
	return &m
}
