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

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// Los nombres se resuelven con LEFT JOIN: un nombre faltante llega como cadena vacía.
const movementSelect = `
	SELECT m.id, m.movement_type, m.quantity, m.note, m.product_id,
	       m.source_warehouse_id, m.target_warehouse_id, m.created_at,
	       COALESCE(p.name, ''), COALESCE(sw.name, ''), COALESCE(tw.name, '')
	FROM stock_movements m
	LEFT JOIN products p ON p.id = m.product_id
	LEFT JOIN warehouses sw ON sw.id = m.source_warehouse_id
	LEFT JOIN warehouses tw ON tw.id = m.target_warehouse_id`

// StockMovementRepo libro de movimientos sobre PostgreSQL (usable con pool o tx).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create agrega un movimiento al libro y completa ID y CreatedAt.
func (r *StockMovementRepo) Create(ctx context.Context, movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (movement_type, quantity, note, product_id, source_warehouse_id, target_warehouse_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		string(movement.Type), movement.Quantity, movement.Note, movement.ProductID,
		movement.SourceWarehouseID, movement.TargetWarehouseID,
	).Scan(&movement.ID, &movement.CreatedAt)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return fmt.Errorf("insert stock movement: %w", domain.ErrNotFound)
		case isRejectedValue(err):
			return fmt.Errorf("insert stock movement: %w", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento con sus nombres resueltos. (nil, nil) si no existe.
func (r *StockMovementRepo) GetByID(ctx context.Context, id int64) (*entity.StockMovement, error) {
	m, err := scanMovement(r.q.QueryRow(ctx, movementSelect+` WHERE m.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock movement: %w", err)
	}
	return m, nil
}

// List devuelve el libro filtrado, en orden de registro.
// El filtro de bodega coincide con origen o destino.
func (r *StockMovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	query := movementSelect + ` WHERE TRUE`
	args := []any{}
	pos := 1
	if filter.ProductID != nil {
		query += fmt.Sprintf(" AND m.product_id = $%d", pos)
		args = append(args, *filter.ProductID)
		pos++
	}
	if filter.WarehouseID != nil {
		query += fmt.Sprintf(" AND (m.source_warehouse_id = $%d OR m.target_warehouse_id = $%d)", pos, pos)
		args = append(args, *filter.WarehouseID)
	}
	query += " ORDER BY m.id"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.StockMovement, 0)
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var m entity.StockMovement
	var movementType string
	err := row.Scan(&m.ID, &movementType, &m.Quantity, &m.Note, &m.ProductID,
		&m.SourceWarehouseID, &m.TargetWarehouseID, &m.CreatedAt,
		&m.ProductName, &m.SourceWarehouseName, &m.TargetWarehouseName)
	if err != nil {
		return nil, err
	}
	m.Type = entity.MovementType(movementType)
	return &m, nil
}
