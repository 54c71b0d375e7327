package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// StockLevels
// ──────────────────────────────────────────────────────────────────────────────

// El orden de procesamiento de las entradas no cambia el resultado
// (conmutatividad de la suma).
func TestStockLevels_OrdenNoImporta(t *testing.T) {
	stock := []*entity.StockEntry{stockIn("A", "10"), stockIn("B", "3.5"), stockIn("A", "2.5")}
	sales := []*entity.SaleEntry{saleAt("A", "4", fixedNow), saleAt("B", "1", fixedNow)}

	forward := report.StockLevels(stock, sales)

	reversedStock := []*entity.StockEntry{stock[2], stock[1], stock[0]}
	reversedSales := []*entity.SaleEntry{sales[1], sales[0]}
	backward := report.StockLevels(reversedStock, reversedSales)

	for _, id := range []string{"A", "B"} {
		assert.True(t, forward[id].Equal(backward[id]), "nivel de %s debe ser igual en ambos órdenes", id)
	}
	assertDec(t, "8.5", forward["A"], "10 + 2.5 − 4")
	assertDec(t, "2.5", forward["B"])
}

// Cantidades fraccionales son válidas y el neto puede quedar negativo.
func TestStockLevels_FraccionalYNegativo(t *testing.T) {
	stock := []*entity.StockEntry{stockIn("A", "0.75")}
	sales := []*entity.SaleEntry{saleAt("A", "1.25", fixedNow)}

	levels := report.StockLevels(stock, sales)
	assertDec(t, "-0.5", report.LevelOf(levels, "A"), "vender más de lo ingresado no se recorta a cero")
}

// Producto sin movimientos: ausente del mapa y tratado como cero.
func TestStockLevels_AusenteEsCero(t *testing.T) {
	levels := report.StockLevels(nil, nil)
	_, present := levels["fantasma"]
	assert.False(t, present)
	assertDec(t, "0", report.LevelOf(levels, "fantasma"))
}

// ──────────────────────────────────────────────────────────────────────────────
// LowStock
// ──────────────────────────────────────────────────────────────────────────────

// El umbral es exclusivo por arriba: nivel == umbral NO es stock bajo.
func TestLowStock_UmbralExclusivo(t *testing.T) {
	products := []*entity.Product{
		product("bajo", "Casi agotado", "1", "2"),
		product("justo", "En el umbral", "1", "2"),
		product("alto", "Sobrado", "1", "2"),
	}
	stock := []*entity.StockEntry{
		stockIn("bajo", "4.99"),
		stockIn("justo", "5"),
		stockIn("alto", "50"),
	}
	levels := report.StockLevels(stock, nil)

	items := report.LowStock(products, levels, dec("5"))

	require.Len(t, items, 1)
	assert.Equal(t, "bajo", items[0].Product.ID)
	assertDec(t, "4.99", items[0].Quantity)
}

// Un producto sin movimientos (nivel cero implícito) sí es stock bajo.
func TestLowStock_SinMovimientosEsBajo(t *testing.T) {
	products := []*entity.Product{product("nuevo", "Recién creado", "1", "2")}
	items := report.LowStock(products, report.StockLevels(nil, nil), dec("5"))

	require.Len(t, items, 1)
	assertDec(t, "0", items[0].Quantity)
}

// El filtro preserva el orden de la lista de productos de entrada.
func TestLowStock_PreservaOrden(t *testing.T) {
	products := []*entity.Product{
		product("z", "Zeta", "1", "2"),
		product("m", "Eme", "1", "2"),
		product("a", "A", "1", "2"),
	}
	items := report.LowStock(products, map[string]decimal.Decimal{}, dec("5"))

	require.Len(t, items, 3)
	assert.Equal(t, "z", items[0].Product.ID)
	assert.Equal(t, "m", items[1].Product.ID)
	assert.Equal(t, "a", items[2].Product.ID)
}

// El umbral es configurable: con umbral 0 un nivel negativo sigue alertando.
func TestLowStock_UmbralConfigurable(t *testing.T) {
	products := []*entity.Product{product("A", "Producto A", "1", "2")}
	sales := []*entity.SaleEntry{saleAt("A", "3", fixedNow.Add(-time.Hour))}
	levels := report.StockLevels(nil, sales)

	assert.Len(t, report.LowStock(products, levels, dec("0")), 1, "nivel −3 < 0")
	assert.Empty(t, report.LowStock(products, levels, dec("-10")), "nivel −3 no es menor que −10")
}
