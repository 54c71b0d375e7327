package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
)

// DailyProductSummary acumula las ventas de hoy para un producto.
type DailyProductSummary struct {
	ProductID   string
	ProductName string
	Quantity    decimal.Decimal // unidades vendidas hoy
	Total       decimal.Decimal // ingresos: Σ qty × selling_price
}

// DailyResult es el desglose de ventas del día de referencia.
type DailyResult struct {
	Rows []DailyProductSummary // orden de primera aparición en el stream de ventas

	// Orphaned cuenta las ventas de hoy cuyo producto ya no existe; se
	// excluyen del resumen sin abortar (solo diagnóstico).
	Orphaned int
}

// Row devuelve la fila del producto, o nil si no vendió hoy.
func (r *DailyResult) Row(productID string) *DailyProductSummary {
	for i := range r.Rows {
		if r.Rows[i].ProductID == productID {
			return &r.Rows[i]
		}
	}
	return nil
}

// DailySummary acumula cantidad e ingresos por producto para las ventas cuyo
// día calendario (en loc) coincide con el de "today". "today" es un parámetro
// explícito del llamador, no una lectura del reloj, para que los tests sean
// deterministas. Una venta a cualquier hora del día cuenta igual.
func DailySummary(sales []*entity.SaleEntry, products []*entity.Product, today time.Time, loc *time.Location) DailyResult {
	if loc == nil {
		loc = today.Location()
	}
	index := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}

	var result DailyResult
	rowAt := make(map[string]int) // productID -> posición en Rows

	for _, sale := range sales {
		if !SameCalendarDay(sale.CreatedAt, today, loc) {
			continue
		}
		product, ok := index[sale.ProductID]
		if !ok {
			// Referencia huérfana: se descarta en silencio
			result.Orphaned++
			continue
		}
		lineTotal := sale.Quantity.Mul(product.SellingPrice)
		if i, seen := rowAt[sale.ProductID]; seen {
			result.Rows[i].Quantity = result.Rows[i].Quantity.Add(sale.Quantity)
			result.Rows[i].Total = result.Rows[i].Total.Add(lineTotal)
			continue
		}
		rowAt[sale.ProductID] = len(result.Rows)
		result.Rows = append(result.Rows, DailyProductSummary{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    sale.Quantity,
			Total:       lineTotal,
		})
	}
	return result
}
