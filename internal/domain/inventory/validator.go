package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mtn-stock-api/internal/domain"
	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
)

// Motivos de rechazo de un movimiento mal formado.
const (
	ReasonTransferWarehouses = "transfer requires distinct source and target warehouses"
	ReasonTargetRequired     = "target warehouse required for stock-in"
	ReasonSourceRequired     = "source warehouse required for stock-out"
	ReasonUnknownType        = "unknown movement type"
	ReasonQuantityPositive   = "quantity must be greater than zero"
	ReasonQuantityPrecision  = "quantity must have at most 4 decimal places and be less than 10^14"
)

// Lookup capacidad de consulta de existencia sobre datos ya resueltos.
// El validador solo lee a través de ella.
type Lookup interface {
	HasProduct(id int64) bool
	HasWarehouse(id int64) bool
}

// Snapshot implementación en memoria de Lookup. La arma el caso de uso con lo
// que leyó del almacén antes de validar.
type Snapshot struct {
	Products   map[int64]bool
	Warehouses map[int64]bool
}

// NewSnapshot crea un Snapshot vacío.
func NewSnapshot() *Snapshot {
	return &Snapshot{Products: map[int64]bool{}, Warehouses: map[int64]bool{}}
}

func (s *Snapshot) HasProduct(id int64) bool   { return s.Products[id] }
func (s *Snapshot) HasWarehouse(id int64) bool { return s.Warehouses[id] }

// ProposedMovement movimiento candidato a entrar al libro.
type ProposedMovement struct {
	Type              entity.MovementType
	Quantity          decimal.Decimal
	Note              string
	ProductID         int64
	SourceWarehouseID *int64
	TargetWarehouseID *int64
}

// AdmittedMovement movimiento que pasó la validación y puede persistirse.
// Solo ValidateMovement lo construye.
type AdmittedMovement struct {
	m entity.StockMovement
}

// Movement devuelve una copia lista para guardar en el libro.
func (a AdmittedMovement) Movement() *entity.StockMovement {
	m := a.m
	return &m
}

// ValidateMovement aplica las reglas de admisión en orden; gana el primer fallo:
//  1. el producto existe;
//  2. campos de bodega según el tipo;
//  3. la bodega de origen, si viene, existe;
//  4. la bodega de destino, si viene, existe.
//
// La cantidad (positiva y representable en NUMERIC(18,4)) es precondición de la
// frontera y se revisa antes que todo.
func ValidateMovement(lookup Lookup, p ProposedMovement) (AdmittedMovement, error) {
	if !p.Quantity.IsPositive() {
		return AdmittedMovement{}, domain.NewInvalidRequest(ReasonQuantityPositive)
	}
	if !entity.FitsNumeric(p.Quantity) {
		return AdmittedMovement{}, domain.NewInvalidRequest(ReasonQuantityPrecision)
	}

	if !lookup.HasProduct(p.ProductID) {
		return AdmittedMovement{}, domain.NewNotFound(domain.EntityProduct, p.ProductID)
	}

	switch p.Type {
	case entity.MovementTypeTransfer:
		if p.SourceWarehouseID == nil || p.TargetWarehouseID == nil ||
			*p.SourceWarehouseID == *p.TargetWarehouseID {
			return AdmittedMovement{}, domain.NewInvalidRequest(ReasonTransferWarehouses)
		}
	case entity.MovementTypeIn:
		if p.TargetWarehouseID == nil {
			return AdmittedMovement{}, domain.NewInvalidRequest(ReasonTargetRequired)
		}
	case entity.MovementTypeOut:
		if p.SourceWarehouseID == nil {
			return AdmittedMovement{}, domain.NewInvalidRequest(ReasonSourceRequired)
		}
	default:
		return AdmittedMovement{}, domain.NewInvalidRequest(ReasonUnknownType)
	}

	if p.SourceWarehouseID != nil && !lookup.HasWarehouse(*p.SourceWarehouseID) {
		return AdmittedMovement{}, domain.NewNotFound(domain.EntitySourceWarehouse, *p.SourceWarehouseID)
	}
	if p.TargetWarehouseID != nil && !lookup.HasWarehouse(*p.TargetWarehouseID) {
		return AdmittedMovement{}, domain.NewNotFound(domain.EntityTargetWarehouse, *p.TargetWarehouseID)
	}

	return AdmittedMovement{m: entity.StockMovement{
		Type:              p.Type,
		Quantity:          p.Quantity,
		Note:              p.Note,
		ProductID:         p.ProductID,
		SourceWarehouseID: copyID(p.SourceWarehouseID),
		TargetWarehouseID: copyID(p.TargetWarehouseID),
	}}, nil
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
