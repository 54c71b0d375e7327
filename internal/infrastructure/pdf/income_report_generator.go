// Package pdf implementa la generación del reporte de ingresos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio  │  Ventana + Fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Cant | Costo | Venta | Ganancia          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Costo total / Ingresos / GANANCIA                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: total de ventas en la ventana                         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

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

	"github.com/stocktrackr/stocktrackr-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 94}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// windowLabels etiquetas legibles de las ventanas del reporte.
var windowLabels = map[string]string{
	"7d":    "Últimos 7 días",
	"month": "Último mes",
	"all":   "Histórico completo",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// IncomeReportGenerator genera el PDF del reporte de ingresos con Maroto v2.
type IncomeReportGenerator struct {
	businessName string
	currency     string // código ISO para las cabeceras de monto, ej: "NGN"
}

// NewIncomeReportGenerator construye el generador.
func NewIncomeReportGenerator(businessName, currency string) *IncomeReportGenerator {
	return &IncomeReportGenerator{businessName: businessName, currency: currency}
}

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *IncomeReportGenerator) Generate(_ context.Context, report *dto.IncomeReportDTO, issuedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ingresos", true).
		WithAuthor(g.businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(report, issuedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow(g.currency))
	for _, r := range tableDetailRows(report.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report.Totals))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y ventana + fecha de emisión (der).
func (g *IncomeReportGenerator) headerRow(report *dto.IncomeReportDTO, issuedAt time.Time) core.Row {
	label := windowLabels[report.Window]
	if label == "" {
		label = report.Window
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte de ingresos y ganancia", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 2,
			}),
			text.New("Emitido: "+issuedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow(currency string) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Cant.", 1, align.Center),
		h("Costo ("+currency+")", 2, align.Right),
		h("Venta ("+currency+")", 2, align.Right),
		h("Ganancia ("+currency+")", 3, align.Right),
	)
}

// tableDetailRows: una fila por producto, en el orden de primera venta.
func tableDetailRows(rows []dto.IncomeRowDTO) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for _, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				r.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				r.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				r.TotalCost.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				r.TotalSelling.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				r.Profit.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(t dto.IncomeTotalsDTO) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Costo total:"),
			label("Ingresos totales:"),
			grandLabel("GANANCIA:"),
		),
		col.New(4).Add(
			value(t.TotalCost.StringFixed(2)),
			value(t.TotalSelling.StringFixed(2)),
			grandValue(t.TotalProfit.StringFixed(2)),
		),
		col.New(1),
	)
}

// footerRow: conteo de ventas de la ventana (y huérfanas, si hubo).
func footerRow(report *dto.IncomeReportDTO) core.Row {
	note := fmt.Sprintf("Ventas en la ventana: %d", report.TotalSales)
	if report.OrphanedEntries > 0 {
		note += fmt.Sprintf("   |   Ventas de productos eliminados (excluidas): %d", report.OrphanedEntries)
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(note, props.Text{Size: 7, Color: colorGray, Top: 2}),
	))
}
