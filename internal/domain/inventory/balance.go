package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mtn-stock-api/internal/domain/entity"
)

// BalanceFilter filtros opcionales del cálculo de saldos.
type BalanceFilter struct {
	ProductID   *int64
	WarehouseID *int64
}

// Matches indica si el movimiento contribuye al cálculo con este filtro.
// El filtro de bodega acepta la bodega como origen o como destino.
func (f BalanceFilter) Matches(m *entity.StockMovement) bool {
	if f.ProductID != nil && m.ProductID != *f.ProductID {
		return false
	}
	if f.WarehouseID != nil {
		w := *f.WarehouseID
		if !sameID(m.SourceWarehouseID, w) && !sameID(m.TargetWarehouseID, w) {
			return false
		}
	}
	return true
}

type balanceKey struct {
	productID   int64
	warehouseID int64
}

// ComputeBalances reproduce el libro de movimientos y devuelve la cantidad neta
// por (producto, bodega). Solo aparecen las claves tocadas por algún movimiento.
//
// in suma en destino, out resta en origen, transfer resta en origen y suma en destino.
// Si falta la bodega de un tramo, ese tramo se ignora. Los saldos negativos se
// devuelven tal cual. Cuando un transfer pasa el filtro de bodega se aplican sus
// dos tramos, aunque uno de ellos sea otra bodega.
//
// El resultado se ordena por producto y bodega.
func ComputeBalances(movements []*entity.StockMovement, filter BalanceFilter) []entity.StockBalance {
	balances := make(map[balanceKey]decimal.Decimal)
	productNames := make(map[int64]string)
	warehouseNames := make(map[int64]string)

	add := func(productID int64, warehouseID *int64, delta decimal.Decimal) {
		if warehouseID == nil {
			return
		}
		k := balanceKey{productID: productID, warehouseID: *warehouseID}
		balances[k] = balances[k].Add(delta)
	}

	for _, m := range movements {
		if m == nil || !filter.Matches(m) {
			continue
		}

		productNames[m.ProductID] = m.ProductName
		if m.SourceWarehouseID != nil {
			warehouseNames[*m.SourceWarehouseID] = m.SourceWarehouseName
		}
		if m.TargetWarehouseID != nil {
			warehouseNames[*m.TargetWarehouseID] = m.TargetWarehouseName
		}

		switch m.Type {
		case entity.MovementTypeIn:
			add(m.ProductID, m.TargetWarehouseID, m.Quantity)
		case entity.MovementTypeOut:
			add(m.ProductID, m.SourceWarehouseID, m.Quantity.Neg())
		case entity.MovementTypeTransfer:
			add(m.ProductID, m.SourceWarehouseID, m.Quantity.Neg())
			add(m.ProductID, m.TargetWarehouseID, m.Quantity)
		}
	}

	out := make([]entity.StockBalance, 0, len(balances))
	for k, qty := range balances {
		warehouseID := k.warehouseID
		out = append(out, entity.StockBalance{
			ProductID:     k.productID,
			WarehouseID:   &warehouseID,
			Quantity:      qty,
			ProductName:   productNames[k.productID],
			WarehouseName: warehouseNames[k.warehouseID],
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return *out[i].WarehouseID < *out[j].WarehouseID
	})
	return out
}

func sameID(id *int64, want int64) bool {
	return id != nil && *id == want
}
