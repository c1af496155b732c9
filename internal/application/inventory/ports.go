package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/mtn-stock-api/internal/application/dto"
)

// BalanceReport datos del reporte de saldos ya calculados.
type BalanceReport struct {
	Title       string
	GeneratedAt time.Time
	Filter      dto.StockQuery
	Balances    []dto.BalanceResponse
}

// BalanceReportGenerator renderiza el reporte de saldos (PDF).
type BalanceReportGenerator interface {
	GenerateBalanceReport(ctx context.Context, report BalanceReport) ([]byte, error)
}
