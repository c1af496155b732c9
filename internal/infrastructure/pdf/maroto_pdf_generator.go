// Package pdf genera el reporte de saldos de stock en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + empresa    │  Fecha de generación         │
//	│  FILTROS: producto / bodega aplicados                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Bodega | Cantidad                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: cantidad de filas                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/mtn-stock-api/internal/application/dto"
	appinventory "github.com/jhoicas/mtn-stock-api/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary  = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray     = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorNegative = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa inventory.BalanceReportGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	company string
}

// NewMarotoPDFGenerator construye el generador. company aparece en el encabezado.
func NewMarotoPDFGenerator(company string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{company: company}
}

// GenerateBalanceReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateBalanceReport(_ context.Context, report appinventory.BalanceReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.company, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.company, report))
	m.AddRows(filterRow(report.Filter))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Balances) == 0 {
		m.AddRows(row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos para los filtros aplicados.", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 2,
			}),
		)))
	}
	m.AddRows(tableDetailRows(report.Balances)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(footerRow(len(report.Balances)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(company string, report appinventory.BalanceReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(company, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Fecha: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func filterRow(f dto.StockQuery) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Producto: %s   |   Bodega: %s",
			idOrAll(f.ProductID), idOrAll(f.WarehouseID),
		), props.Text{Size: 8, Top: 1, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 5, align.Left),
		h("Bodega", 4, align.Left),
		h("Cantidad", 3, align.Right),
	)
}

// tableDetailRows: una fila por (producto, bodega). Los saldos negativos van en rojo.
func tableDetailRows(balances []dto.BalanceResponse) []core.Row {
	result := make([]core.Row, 0, len(balances))
	for _, b := range balances {
		qty := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if b.Quantity.IsNegative() {
			qty.Color = colorNegative
		}
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(
				labelFor(b.ProductName, b.ProductID),
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				labelFor(b.WarehouseName, derefID(b.WarehouseID)),
				props.Text{Size: 8, Top: 1, Left: 1},
			)),
			col.New(3).Add(text.New(b.Quantity.String(), qty)),
		))
	}
	return result
}

func footerRow(n int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d saldos", n), props.Text{
			Size: 7, Align: align.Right, Color: colorGray, Top: 2,
		}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func labelFor(name string, id int64) string {
	return nonEmpty(name, "#"+strconv.FormatInt(id, 10))
}

func idOrAll(id *int64) string {
	if id == nil {
		return "todos"
	}
	return "#" + strconv.FormatInt(*id, 10)
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}
