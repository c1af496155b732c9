package inventory

import (
	"context"
	"errors"
	"time"

	"github.com/jhoicas/mtn-stock-api/internal/application/dto"
	"github.com/jhoicas/mtn-stock-api/internal/domain"
	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
	"github.com/jhoicas/mtn-stock-api/internal/domain/inventory"
	"github.com/jhoicas/mtn-stock-api/internal/domain/repository"
)

// ErrReportUnavailable el servicio arrancó sin generador de reportes.
var ErrReportUnavailable = errors.New("generador de reporte de saldos no configurado")

// StockUseCase consultas sobre el libro de movimientos y saldos derivados.
type StockUseCase struct {
	movements repository.StockMovementRepository
	report    BalanceReportGenerator
	now       func() time.Time
}

// NewStockUseCase construye el caso de uso. report puede ser nil si no se expone el PDF.
func NewStockUseCase(movements repository.StockMovementRepository, report BalanceReportGenerator) *StockUseCase {
	return &StockUseCase{movements: movements, report: report, now: time.Now}
}

// ListMovements lista el libro en orden de inserción con filtros opcionales.
func (uc *StockUseCase) ListMovements(ctx context.Context, q dto.StockQuery) ([]dto.MovementResponse, error) {
	list, err := uc.movements.List(ctx, repository.MovementFilter{ProductID: q.ProductID, WarehouseID: q.WarehouseID})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *ToMovementResponse(m))
	}
	return out, nil
}

// GetMovement obtiene un movimiento por ID.
func (uc *StockUseCase) GetMovement(ctx context.Context, id int64) (*dto.MovementResponse, error) {
	m, err := uc.movements.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NewNotFound(domain.EntityMovement, id)
	}
	return ToMovementResponse(m), nil
}

// Balances recalcula los saldos por (producto, bodega) a partir del libro.
func (uc *StockUseCase) Balances(ctx context.Context, q dto.StockQuery) ([]dto.BalanceResponse, error) {
	list, err := uc.movements.List(ctx, repository.MovementFilter{ProductID: q.ProductID, WarehouseID: q.WarehouseID})
	if err != nil {
		return nil, err
	}
	balances := inventory.ComputeBalances(list, inventory.BalanceFilter{ProductID: q.ProductID, WarehouseID: q.WarehouseID})
	out := make([]dto.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, dto.BalanceResponse{
			ProductID:     b.ProductID,
			WarehouseID:   b.WarehouseID,
			Quantity:      b.Quantity,
			ProductName:   b.ProductName,
			WarehouseName: b.WarehouseName,
		})
	}
	return out, nil
}

// BalanceReport genera el PDF de saldos con los mismos filtros que Balances.
func (uc *StockUseCase) BalanceReport(ctx context.Context, q dto.StockQuery) ([]byte, error) {
	if uc.report == nil {
		return nil, ErrReportUnavailable
	}
	balances, err := uc.Balances(ctx, q)
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateBalanceReport(ctx, BalanceReport{
		Title:       "Stok Bakiyeleri",
		GeneratedAt: uc.now(),
		Filter:      q,
		Balances:    balances,
	})
}

// ToProposedMovement adapta el request HTTP al movimiento candidato del dominio.
func ToProposedMovement(in dto.CreateMovementRequest) inventory.ProposedMovement {
	return inventory.ProposedMovement{
		Type:              entity.MovementType(in.MovementType),
		Quantity:          in.Quantity,
		Note:              in.Note,
		ProductID:         in.ProductID,
		SourceWarehouseID: in.SourceWarehouseID,
		TargetWarehouseID: in.TargetWarehouseID,
	}
}

// ToMovementResponse mapea la entidad a su salida.
func ToMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:                m.ID,
		MovementType:      string(m.Type),
		Quantity:          m.Quantity,
		Note:              m.Note,
		ProductID:         m.ProductID,
		SourceWarehouseID: m.SourceWarehouseID,
		TargetWarehouseID: m.TargetWarehouseID,
		CreatedAt:         m.CreatedAt,
	}
}
