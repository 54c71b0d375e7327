package dto

import "github.com/shopspring/decimal"

// IncomeReportRequest parámetros de GET /api/reports/income.
type IncomeReportRequest struct {
	Window string `query:"window"` // 7d | month | all (vacío = all)
}

// IncomeRowDTO ingresos/ganancia de un producto dentro de la ventana.
type IncomeRowDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     decimal.Decimal `json:"quantity"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalSelling decimal.Decimal `json:"total_selling"`
	Profit       decimal.Decimal `json:"profit"`
}

// IncomeTotalsDTO totales generales de la ventana.
type IncomeTotalsDTO struct {
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalSelling decimal.Decimal `json:"total_selling"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
}

// IncomeReportDTO respuesta de GET /api/reports/income.
type IncomeReportDTO struct {
	Window     string          `json:"window"`
	Rows       []IncomeRowDTO  `json:"rows"`
	Totals     IncomeTotalsDTO `json:"totals"`
	TotalSales int             `json:"total_sales"` // ventas que cayeron en la ventana

	// Ventas de la ventana cuyo producto ya no existe (diagnóstico; se
	// excluyen de filas y totales).
	OrphanedEntries int `json:"orphaned_entries,omitempty"`
}
