package report

import (
	"github.com/shopspring/decimal"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
)

// StockLevels deriva el stock neto por producto:
//
//	nivel(p) = Σ stock_entries(p).quantity − Σ sales(p).quantity
//
// El orden de procesamiento no afecta el resultado (la suma es conmutativa).
// Un producto sin entradas ni ventas no aparece en el mapa; los consumidores
// lo tratan como cero (ver LevelOf). Un nivel negativo es una salida válida
// (se vendió más de lo registrado como entrada) y se entrega tal cual.
func StockLevels(stockEntries []*entity.StockEntry, sales []*entity.SaleEntry) map[string]decimal.Decimal {
	levels := make(map[string]decimal.Decimal)
	for _, e := range stockEntries {
		levels[e.ProductID] = levels[e.ProductID].Add(e.Quantity)
	}
	for _, s := range sales {
		levels[s.ProductID] = levels[s.ProductID].Sub(s.Quantity)
	}
	return levels
}

// LevelOf devuelve el nivel del producto, tratando la ausencia como cero.
func LevelOf(levels map[string]decimal.Decimal, productID string) decimal.Decimal {
	return levels[productID] // el zero value de decimal.Decimal es 0
}

// LowStockItem es un producto cuyo stock neto está bajo el umbral de alerta.
type LowStockItem struct {
	Product  *entity.Product
	Quantity decimal.Decimal // nivel neto (puede ser negativo)
}

// LowStock filtra los productos con nivel estrictamente menor al umbral
// (nivel == umbral NO es stock bajo). Filtro puro, sin efectos, y preserva el
// orden de la lista de productos de entrada.
func LowStock(products []*entity.Product, levels map[string]decimal.Decimal, threshold decimal.Decimal) []LowStockItem {
	var items []LowStockItem
	for _, p := range products {
		level := LevelOf(levels, p.ID)
		if level.LessThan(threshold) {
			items = append(items, LowStockItem{Product: p, Quantity: level})
		}
	}
	return items
}
