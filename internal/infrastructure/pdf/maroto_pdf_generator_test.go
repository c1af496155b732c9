package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mtn-stock-api/internal/application/dto"
	appinventory "github.com/jhoicas/mtn-stock-api/internal/application/inventory"
)

func TestGenerateBalanceReport(t *testing.T) {
	w := int64(10)
	g := NewMarotoPDFGenerator("MTN Enerji")

	doc, err := g.GenerateBalanceReport(context.Background(), appinventory.BalanceReport{
		Title:       "Stok Bakiyeleri",
		GeneratedAt: time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Filter:      dto.StockQuery{WarehouseID: &w},
		Balances: []dto.BalanceResponse{
			{ProductID: 1, WarehouseID: &w, Quantity: decimal.RequireFromString("57.75"), ProductName: "Panel Solar", WarehouseName: "Depo Ankara"},
			{ProductID: 2, WarehouseID: &w, Quantity: decimal.NewFromInt(-9)},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateBalanceReport_Vacio(t *testing.T) {
	doc, err := NewMarotoPDFGenerator("").GenerateBalanceReport(context.Background(), appinventory.BalanceReport{Title: "Stok"})
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
}

func TestHelpers(t *testing.T) {
	id := int64(7)
	assert.Equal(t, "#7", labelFor("", 7))
	assert.Equal(t, "Depo", labelFor("Depo", 7))
	assert.Equal(t, "todos", idOrAll(nil))
	assert.Equal(t, "#7", idOrAll(&id))
	assert.Equal(t, int64(0), derefID(nil))
}
