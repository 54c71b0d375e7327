package report_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/report"
)

// Varias ventas del mismo producto en el día se acumulan en una sola fila,
// sin importar la hora de cada venta.
func TestDailySummary_AcumulaPorProducto(t *testing.T) {
	products := []*entity.Product{
		product("A", "Producto A", "100", "150"),
		product("B", "Producto B", "10", "25"),
	}
	startOfDay := time.Date(2025, time.August, 20, 0, 0, 0, 0, time.UTC)
	sales := []*entity.SaleEntry{
		saleAt("A", "1", startOfDay.Add(1*time.Minute)),             // madrugada
		saleAt("B", "3", startOfDay.Add(12*time.Hour)),              // mediodía
		saleAt("A", "2.5", startOfDay.Add(23*time.Hour+59*time.Minute)), // casi medianoche
	}

	daily := report.DailySummary(sales, products, fixedNow, time.UTC)

	require.Len(t, daily.Rows, 2)
	rowA := daily.Row("A")
	require.NotNil(t, rowA)
	assertDec(t, "3.5", rowA.Quantity)
	assertDec(t, "525", rowA.Total, "3.5 × 150")
	rowB := daily.Row("B")
	require.NotNil(t, rowB)
	assertDec(t, "3", rowB.Quantity)
	assertDec(t, "75", rowB.Total)
}

// Una venta entra al resumen diario si y solo si su día calendario coincide
// con el del "today" de referencia; ayer y mañana quedan fuera.
func TestDailySummary_SoloElDiaDeReferencia(t *testing.T) {
	products := []*entity.Product{product("A", "Producto A", "100", "150")}
	sales := []*entity.SaleEntry{
		saleAt("A", "1", fixedNow.AddDate(0, 0, -1)),
		saleAt("A", "2", fixedNow),
		saleAt("A", "4", fixedNow.AddDate(0, 0, 1)),
	}

	daily := report.DailySummary(sales, products, fixedNow, time.UTC)

	require.Len(t, daily.Rows, 1)
	assertDec(t, "2", daily.Rows[0].Quantity)
}

// "today" es un parámetro: el mismo snapshot produce resúmenes distintos para
// días de referencia distintos (nada lee el reloj del sistema).
func TestDailySummary_TodayExplicito(t *testing.T) {
	products := []*entity.Product{product("A", "Producto A", "100", "150")}
	sales := []*entity.SaleEntry{
		saleAt("A", "2", fixedNow),
		saleAt("A", "3", fixedNow.AddDate(0, 0, -1)),
	}

	hoy := report.DailySummary(sales, products, fixedNow, time.UTC)
	ayer := report.DailySummary(sales, products, fixedNow.AddDate(0, 0, -1), time.UTC)

	assertDec(t, "2", hoy.Rows[0].Quantity)
	assertDec(t, "3", ayer.Rows[0].Quantity)
	assert.NotEqual(t, hoy.Rows[0].Quantity.String(), ayer.Rows[0].Quantity.String())
}
