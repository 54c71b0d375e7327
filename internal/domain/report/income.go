package report

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
)

// IncomeProductSummary acumula ingresos y ganancia de un producto en la ventana.
type IncomeProductSummary struct {
	ProductID    string
	ProductName  string
	Quantity     decimal.Decimal // unidades vendidas
	TotalCost    decimal.Decimal // Σ qty × cost_price
	TotalSelling decimal.Decimal // Σ qty × selling_price
	Profit       decimal.Decimal // Σ qty × (selling_price − cost_price)
}

// IncomeTotals son los totales generales de la ventana, sumados sobre todos
// los productos.
type IncomeTotals struct {
	TotalCost    decimal.Decimal
	TotalSelling decimal.Decimal
	TotalProfit  decimal.Decimal
}

// IncomeResult es el resumen de ingresos/ganancia de una ventana de tiempo.
type IncomeResult struct {
	Window    Window
	Rows      []IncomeProductSummary // orden de primera aparición en el stream de ventas
	Totals    IncomeTotals
	SaleCount int // ventas que cayeron en la ventana (para "total sales")

	// Orphaned cuenta las ventas dentro de la ventana cuyo producto ya no
	// existe; se excluyen sin abortar.
	Orphaned int
}

// Row devuelve la fila del producto, o nil si no vendió en la ventana.
func (r *IncomeResult) Row(productID string) *IncomeProductSummary {
	for i := range r.Rows {
		if r.Rows[i].ProductID == productID {
			return &r.Rows[i]
		}
	}
	return nil
}

// IncomeSummary acumula, por producto y en total, la cantidad vendida, el
// costo, los ingresos y la ganancia de las ventas cuyo timestamp es >= al
// límite inferior de la ventana (o de todas, si la ventana es "all").
//
// La ganancia se acumula POR VENTA como qty × (selling − cost), no restando
// los totales acumulados al final; con aritmética decimal ambas formas
// coinciden, pero se preserva el cálculo por entrada por fidelidad numérica.
// "now" es un parámetro explícito del llamador.
func IncomeSummary(sales []*entity.SaleEntry, products []*entity.Product, w Window, now time.Time) IncomeResult {
	lower, bounded := w.LowerBound(now)
	return accumulateIncome(sales, products, w, func(at time.Time) bool {
		return !bounded || !at.Before(lower)
	})
}

// CurrentMonthIncome acumula los ingresos del mes calendario de "now" en la
// zona horaria dada: entra una venta si cae en el mismo mes y año que "now",
// sin importar el día. Es la ventana del dashboard; difiere de
// WindowLastMonth, que es rodante (un mes calendario hacia atrás desde "now").
func CurrentMonthIncome(sales []*entity.SaleEntry, products []*entity.Product, now time.Time, loc *time.Location) IncomeResult {
	return accumulateIncome(sales, products, WindowCurrentMonth, func(at time.Time) bool {
		return SameCalendarMonth(at, now, loc)
	})
}

// accumulateIncome recorre las ventas aceptadas por "in" acumulando filas por
// producto (orden de primera aparición) y totales generales.
func accumulateIncome(sales []*entity.SaleEntry, products []*entity.Product, w Window, in func(time.Time) bool) IncomeResult {
	index := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		index[p.ID] = p
	}

	result := IncomeResult{Window: w}
	rowAt := make(map[string]int) // productID -> posición en Rows

	for _, sale := range sales {
		if !in(sale.CreatedAt) {
			continue
		}
		result.SaleCount++

		product, ok := index[sale.ProductID]
		if !ok {
			result.Orphaned++
			continue
		}

		cost := sale.Quantity.Mul(product.CostPrice)
		selling := sale.Quantity.Mul(product.SellingPrice)
		profit := sale.Quantity.Mul(product.SellingPrice.Sub(product.CostPrice))

		if i, seen := rowAt[sale.ProductID]; seen {
			row := &result.Rows[i]
			row.Quantity = row.Quantity.Add(sale.Quantity)
			row.TotalCost = row.TotalCost.Add(cost)
			row.TotalSelling = row.TotalSelling.Add(selling)
			row.Profit = row.Profit.Add(profit)
		} else {
			rowAt[sale.ProductID] = len(result.Rows)
			result.Rows = append(result.Rows, IncomeProductSummary{
				ProductID:    product.ID,
				ProductName:  product.Name,
				Quantity:     sale.Quantity,
				TotalCost:    cost,
				TotalSelling: selling,
				Profit:       profit,
			})
		}

		result.Totals.TotalCost = result.Totals.TotalCost.Add(cost)
		result.Totals.TotalSelling = result.Totals.TotalSelling.Add(selling)
		result.Totals.TotalProfit = result.Totals.TotalProfit.Add(profit)
	}
	return result
}
