package inventory

import (
	"context"

	"github.com/jhoicas/mtn-stock-api/internal/application/dto"
	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
	"github.com/jhoicas/mtn-stock-api/internal/domain/inventory"
	"github.com/jhoicas/mtn-stock-api/internal/domain/repository"
	"github.com/jhoicas/mtn-stock-api/pkg/logger"
)

// RegisterMovementUseCase admite movimientos en el libro. Lectura de referencias,
// validación e inserción ocurren en una sola transacción.
type RegisterMovementUseCase struct {
	txRunner repository.TxRunner
	log      *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso. log puede ser nil.
func NewRegisterMovementUseCase(txRunner repository.TxRunner, log *logger.Logger) *RegisterMovementUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &RegisterMovementUseCase{txRunner: txRunner, log: log}
}

// RegisterMovement valida y persiste un movimiento. Si la validación falla no se
// escribe nada y se devuelve el error de dominio tal cual.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	proposed := ToProposedMovement(in)

	var saved *entity.StockMovement
	err := uc.txRunner.Run(ctx, func(r repository.Repos) error {
		snap, err := loadSnapshot(ctx, r, proposed)
		if err != nil {
			return err
		}
		admitted, err := inventory.ValidateMovement(snap, proposed)
		if err != nil {
			return err
		}
		m := admitted.Movement()
		if err := r.Movements.Create(ctx, m); err != nil {
			return err
		}
		saved = m
		return nil
	})
	if err != nil {
		uc.log.Debug().Err(err).
			Str("movement_type", in.MovementType).
			Int64("product_id", in.ProductID).
			Msg("movimiento rechazado")
		return nil, err
	}

	uc.log.Debug().
		Int64("movement_id", saved.ID).
		Str("movement_type", string(saved.Type)).
		Int64("product_id", saved.ProductID).
		Str("quantity", saved.Quantity.String()).
		Msg("movimiento registrado")
	return ToMovementResponse(saved), nil
}

// loadSnapshot lee dentro de la tx solo las referencias que el movimiento nombra.
func loadSnapshot(ctx context.Context, r repository.Repos, p inventory.ProposedMovement) (*inventory.Snapshot, error) {
	snap := inventory.NewSnapshot()

	product, err := r.Products.GetByID(ctx, p.ProductID)
	if err != nil {
		return nil, err
	}
	snap.Products[p.ProductID] = product != nil

	for _, id := range []*int64{p.SourceWarehouseID, p.TargetWarehouseID} {
		if id == nil {
			continue
		}
		if _, seen := snap.Warehouses[*id]; seen {
			continue
		}
		w, err := r.Warehouses.GetByID(ctx, *id)
		if err != nil {
			return nil, err
		}
		snap.Warehouses[*id] = w != nil
	}
	return snap, nil
}
