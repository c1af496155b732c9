package inventory_test

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
	"github.com/jhoicas/mtn-stock-api/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func mov(t entity.MovementType, product int64, qty string, src, dst *int64) *entity.StockMovement {
	m := &entity.StockMovement{
		Type:              t,
		Quantity:          decimal.RequireFromString(qty),
		ProductID:         product,
		SourceWarehouseID: src,
		TargetWarehouseID: dst,
		ProductName:       productName(product),
	}
	if src != nil {
		m.SourceWarehouseName = warehouseName(*src)
	}
	if dst != nil {
		m.TargetWarehouseName = warehouseName(*dst)
	}
	return m
}

func productName(id int64) string {
	return map[int64]string{1: "Panel Solar", 2: "Inversor"}[id]
}

func warehouseName(id int64) string {
	return map[int64]string{10: "Depo Ankara", 20: "Depo İzmir", 30: "Depo Bursa"}[id]
}

// asMap indexa el resultado por (producto, bodega) → cantidad en texto.
func asMap(t *testing.T, balances []entity.StockBalance) map[[2]int64]string {
	t.Helper()
	out := make(map[[2]int64]string, len(balances))
	for _, b := range balances {
		require.NotNil(t, b.WarehouseID)
		out[[2]int64{b.ProductID, *b.WarehouseID}] = b.Quantity.String()
	}
	return out
}

func ledger() []*entity.StockMovement {
	return []*entity.StockMovement{
		mov(entity.MovementTypeIn, 1, "100", nil, id(10)),
		mov(entity.MovementTypeIn, 1, "0.5", nil, id(20)),
		mov(entity.MovementTypeOut, 1, "12.25", id(10), nil),
		mov(entity.MovementTypeTransfer, 1, "30", id(10), id(20)),
		mov(entity.MovementTypeIn, 2, "7", nil, id(30)),
		mov(entity.MovementTypeTransfer, 2, "2", id(30), id(10)),
		mov(entity.MovementTypeOut, 2, "9", id(20), nil),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Un solo movimiento
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeBalances_UnIn(t *testing.T) {
	got := inventory.ComputeBalances(
		[]*entity.StockMovement{mov(entity.MovementTypeIn, 1, "8", nil, id(10))},
		inventory.BalanceFilter{},
	)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ProductID)
	assert.Equal(t, int64(10), *got[0].WarehouseID)
	assert.Equal(t, "8", got[0].Quantity.String())
	assert.Equal(t, "Panel Solar", got[0].ProductName)
	assert.Equal(t, "Depo Ankara", got[0].WarehouseName)
}

func TestComputeBalances_UnOut(t *testing.T) {
	got := inventory.ComputeBalances(
		[]*entity.StockMovement{mov(entity.MovementTypeOut, 1, "8", id(10), nil)},
		inventory.BalanceFilter{},
	)
	assert.Equal(t, map[[2]int64]string{{1, 10}: "-8"}, asMap(t, got))
}

func TestComputeBalances_UnTransfer(t *testing.T) {
	got := inventory.ComputeBalances(
		[]*entity.StockMovement{mov(entity.MovementTypeTransfer, 1, "8", id(10), id(20))},
		inventory.BalanceFilter{},
	)
	assert.Equal(t, map[[2]int64]string{{1, 10}: "-8", {1, 20}: "8"}, asMap(t, got))
}

func TestComputeBalances_DosInSeAcumulan(t *testing.T) {
	got := inventory.ComputeBalances([]*entity.StockMovement{
		mov(entity.MovementTypeIn, 1, "3", nil, id(10)),
		mov(entity.MovementTypeIn, 1, "4", nil, id(10)),
	}, inventory.BalanceFilter{})
	require.Len(t, got, 1)
	assert.True(t, got[0].Quantity.Equal(decimal.NewFromInt(7)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Libro completo
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeBalances_LibroCompleto(t *testing.T) {
	got := inventory.ComputeBalances(ledger(), inventory.BalanceFilter{})
	assert.Equal(t, map[[2]int64]string{
		{1, 10}: "57.75",
		{1, 20}: "30.5",
		{2, 30}: "5",
		{2, 10}: "2",
		{2, 20}: "-9", // saldo negativo: se devuelve sin recortar
	}, asMap(t, got))
}

func TestComputeBalances_OrdenDeterminista(t *testing.T) {
	got := inventory.ComputeBalances(ledger(), inventory.BalanceFilter{})
	for i := 1; i < len(got); i++ {
		prev, cur := got[i-1], got[i]
		ordered := prev.ProductID < cur.ProductID ||
			(prev.ProductID == cur.ProductID && *prev.WarehouseID < *cur.WarehouseID)
		assert.True(t, ordered, "posición %d fuera de orden", i)
	}
}

// El orden de los movimientos no cambia ningún saldo.
func TestComputeBalances_Conmutativo(t *testing.T) {
	base := ledger()
	want := asMap(t, inventory.ComputeBalances(base, inventory.BalanceFilter{}))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		shuffled := append([]*entity.StockMovement(nil), base...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, asMap(t, inventory.ComputeBalances(shuffled, inventory.BalanceFilter{})))
	}
}

func TestComputeBalances_Vacio(t *testing.T) {
	got := inventory.ComputeBalances(nil, inventory.BalanceFilter{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Filtros
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeBalances_FiltroProducto(t *testing.T) {
	got := inventory.ComputeBalances(ledger(), inventory.BalanceFilter{ProductID: id(2)})
	for _, b := range got {
		assert.Equal(t, int64(2), b.ProductID)
	}
	assert.Equal(t, map[[2]int64]string{{2, 30}: "5", {2, 10}: "2", {2, 20}: "-9"}, asMap(t, got))
}

// Un transfer que toca la bodega filtrada aporta también su otro tramo.
func TestComputeBalances_FiltroBodegaIncluyeOtroTramo(t *testing.T) {
	got := inventory.ComputeBalances(ledger(), inventory.BalanceFilter{WarehouseID: id(20)})
	assert.Equal(t, map[[2]int64]string{
		{1, 20}: "30.5",
		{1, 10}: "-30", // otro tramo del transfer 10 → 20
		{2, 20}: "-9",
	}, asMap(t, got))
}

func TestComputeBalances_FiltroCombinado(t *testing.T) {
	got := inventory.ComputeBalances(ledger(), inventory.BalanceFilter{ProductID: id(2), WarehouseID: id(10)})
	assert.Equal(t, map[[2]int64]string{{2, 30}: "-2", {2, 10}: "2"}, asMap(t, got))
}

func TestComputeBalances_FiltroSinCoincidencias(t *testing.T) {
	got := inventory.ComputeBalances(ledger(), inventory.BalanceFilter{WarehouseID: id(404)})
	assert.Empty(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos anteriores a la validación
// ──────────────────────────────────────────────────────────────────────────────

func TestComputeBalances_TramoSinBodegaSeIgnora(t *testing.T) {
	got := inventory.ComputeBalances([]*entity.StockMovement{
		mov(entity.MovementTypeIn, 1, "5", id(10), nil),       // in sin destino
		mov(entity.MovementTypeOut, 1, "5", nil, id(10)),      // out sin origen
		mov(entity.MovementTypeTransfer, 1, "4", nil, id(20)), // transfer sin origen
	}, inventory.BalanceFilter{})
	assert.Equal(t, map[[2]int64]string{{1, 20}: "4"}, asMap(t, got))
}

func TestComputeBalances_NombresFaltantesQuedanVacios(t *testing.T) {
	m := mov(entity.MovementTypeIn, 1, "1", nil, id(10))
	m.ProductName = ""
	m.TargetWarehouseName = ""
	got := inventory.ComputeBalances([]*entity.StockMovement{m, nil}, inventory.BalanceFilter{})
	require.Len(t, got, 1)
	assert.Equal(t, "", got[0].ProductName)
	assert.Equal(t, "", got[0].WarehouseName)
}

func TestBalanceFilter_Matches(t *testing.T) {
	m := mov(entity.MovementTypeTransfer, 1, "1", id(10), id(20))
	assert.True(t, inventory.BalanceFilter{}.Matches(m))
	assert.True(t, inventory.BalanceFilter{WarehouseID: id(10)}.Matches(m))
	assert.True(t, inventory.BalanceFilter{WarehouseID: id(20)}.Matches(m))
	assert.False(t, inventory.BalanceFilter{WarehouseID: id(30)}.Matches(m))
	assert.False(t, inventory.BalanceFilter{ProductID: id(2)}.Matches(m))
}
