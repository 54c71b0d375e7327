package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Replica las cuatro secciones del dashboard: stock actual, alerta de stock
// bajo, desglose de ventas de hoy y desglose de ingresos del mes en curso.
type DashboardSummaryDTO struct {
	// Stock actual de todos los productos (ausencia de movimientos = 0),
	// en el orden de la lista de productos.
	StockLevels []StockLevelDTO `json:"stock_levels"`

	// Productos con nivel neto estrictamente bajo el umbral configurado.
	LowStock []StockLevelDTO `json:"low_stock"`

	// Ventas de hoy por producto (día calendario de la zona configurada).
	DailySales []DailySaleDTO `json:"daily_sales"`

	// Ingresos del mes calendario en curso (mismo mes/año que hoy) con
	// totales generales. No es la ventana rodante "month" del reporte.
	MonthlyIncome IncomeReportDTO `json:"monthly_income"`
}

// StockLevelDTO nivel neto de stock de un producto.
type StockLevelDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"` // puede ser negativo
}

// DailySaleDTO acumulado de ventas de hoy para un producto.
type DailySaleDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"` // qty × selling_price
}
