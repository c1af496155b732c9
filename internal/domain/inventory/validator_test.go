package inventory_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mtn-stock-api/internal/domain"
	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
	"github.com/jhoicas/mtn-stock-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func id(v int64) *int64 { return &v }

// lookupWith arma un Snapshot con el producto 1 y las bodegas 10 y 20.
func lookupWith() *inventory.Snapshot {
	s := inventory.NewSnapshot()
	s.Products[1] = true
	s.Warehouses[10] = true
	s.Warehouses[20] = true
	return s
}

func proposal(t entity.MovementType, src, dst *int64) inventory.ProposedMovement {
	return inventory.ProposedMovement{
		Type:              t,
		Quantity:          decimal.NewFromInt(5),
		ProductID:         1,
		SourceWarehouseID: src,
		TargetWarehouseID: dst,
	}
}

func requireInvalid(t *testing.T, err error, reason string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	var inv *domain.InvalidRequestError
	require.True(t, errors.As(err, &inv))
	assert.Equal(t, reason, inv.Reason)
}

func requireNotFound(t *testing.T, err error, entityName string, wantID int64) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	var nf *domain.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, entityName, nf.Entity)
	assert.Equal(t, wantID, nf.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Casos válidos
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateMovement_Admitidos(t *testing.T) {
	cases := []struct {
		name string
		p    inventory.ProposedMovement
	}{
		{"in con destino", proposal(entity.MovementTypeIn, nil, id(10))},
		{"out con origen", proposal(entity.MovementTypeOut, id(10), nil)},
		{"transfer entre bodegas distintas", proposal(entity.MovementTypeTransfer, id(10), id(20))},
		{"in con origen presente y existente", proposal(entity.MovementTypeIn, id(20), id(10))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adm, err := inventory.ValidateMovement(lookupWith(), tc.p)
			require.NoError(t, err)

			m := adm.Movement()
			assert.Equal(t, tc.p.Type, m.Type)
			assert.Equal(t, int64(1), m.ProductID)
			assert.True(t, m.Quantity.Equal(decimal.NewFromInt(5)))
			assert.Equal(t, tc.p.SourceWarehouseID, m.SourceWarehouseID)
			assert.Equal(t, tc.p.TargetWarehouseID, m.TargetWarehouseID)
		})
	}
}

func TestValidateMovement_NoCompartePunteros(t *testing.T) {
	src := id(10)
	adm, err := inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeOut, src, nil))
	require.NoError(t, err)

	*src = 99
	assert.Equal(t, int64(10), *adm.Movement().SourceWarehouseID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reglas por tipo
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateMovement_TransferMismaBodega(t *testing.T) {
	// La bodega 77 no existe: igual debe fallar por estructura y no por referencia.
	for _, w := range []int64{10, 77} {
		_, err := inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeTransfer, id(w), id(w)))
		requireInvalid(t, err, inventory.ReasonTransferWarehouses)
	}
}

func TestValidateMovement_TransferSinUnaBodega(t *testing.T) {
	_, err := inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeTransfer, id(10), nil))
	requireInvalid(t, err, inventory.ReasonTransferWarehouses)

	_, err = inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeTransfer, nil, id(10)))
	requireInvalid(t, err, inventory.ReasonTransferWarehouses)
}

func TestValidateMovement_InSinDestino(t *testing.T) {
	_, err := inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeIn, id(10), nil))
	requireInvalid(t, err, inventory.ReasonTargetRequired)
}

func TestValidateMovement_OutSinOrigen(t *testing.T) {
	_, err := inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeOut, nil, id(10)))
	requireInvalid(t, err, inventory.ReasonSourceRequired)
}

func TestValidateMovement_TipoDesconocido(t *testing.T) {
	_, err := inventory.ValidateMovement(lookupWith(), proposal(entity.MovementType("adjust"), id(10), nil))
	requireInvalid(t, err, inventory.ReasonUnknownType)
}

func TestValidateMovement_CantidadNoPositiva(t *testing.T) {
	for _, q := range []int64{0, -3} {
		p := proposal(entity.MovementTypeIn, nil, id(10))
		p.Quantity = decimal.NewFromInt(q)
		_, err := inventory.ValidateMovement(lookupWith(), p)
		requireInvalid(t, err, inventory.ReasonQuantityPositive)
	}
}

// Lo que NUMERIC(18,4) redondearía o no puede guardar se rechaza antes de persistir.
func TestValidateMovement_CantidadFueraDePrecision(t *testing.T) {
	for _, q := range []string{"0.00001", "0.00005", "1.23456", "100000000000000"} {
		p := proposal(entity.MovementTypeIn, nil, id(10))
		p.Quantity = decimal.RequireFromString(q)
		_, err := inventory.ValidateMovement(lookupWith(), p)
		requireInvalid(t, err, inventory.ReasonQuantityPrecision)
	}

	p := proposal(entity.MovementTypeIn, nil, id(10))
	p.Quantity = decimal.RequireFromString("0.0001")
	_, err := inventory.ValidateMovement(lookupWith(), p)
	assert.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de las reglas
// ──────────────────────────────────────────────────────────────────────────────

// El producto inexistente gana sobre cualquier error de bodega.
func TestValidateMovement_ProductoPrimero(t *testing.T) {
	proposals := []inventory.ProposedMovement{
		proposal(entity.MovementTypeTransfer, id(10), id(10)),
		proposal(entity.MovementTypeIn, nil, nil),
		proposal(entity.MovementTypeOut, id(404), nil),
		proposal(entity.MovementTypeTransfer, id(404), id(405)),
	}
	for _, p := range proposals {
		p.ProductID = 999
		_, err := inventory.ValidateMovement(lookupWith(), p)
		requireNotFound(t, err, domain.EntityProduct, 999)
	}
}

func TestValidateMovement_OrigenAntesQueDestino(t *testing.T) {
	_, err := inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeTransfer, id(404), id(405)))
	requireNotFound(t, err, domain.EntitySourceWarehouse, 404)

	_, err = inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeTransfer, id(10), id(405)))
	requireNotFound(t, err, domain.EntityTargetWarehouse, 405)
}

func TestValidateMovement_ReglaDeTipoAntesQueExistencia(t *testing.T) {
	// out sin origen con un destino inexistente: primero la regla estructural.
	_, err := inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeOut, nil, id(405)))
	requireInvalid(t, err, inventory.ReasonSourceRequired)
}

func TestValidateMovement_BodegaNoUsadaIgualSeVerifica(t *testing.T) {
	_, err := inventory.ValidateMovement(lookupWith(), proposal(entity.MovementTypeIn, id(404), id(10)))
	requireNotFound(t, err, domain.EntitySourceWarehouse, 404)
}
