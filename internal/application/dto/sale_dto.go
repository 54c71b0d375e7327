package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRequest cuerpo de POST /api/sales.
type SaleRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"` // > 0
}

// SaleResponse fila del historial de ventas. Total = qty × selling_price del
// producto al momento de la lectura (precio vigente, como el dashboard
// original); cero si el producto ya no existe.
type SaleResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Total       decimal.Decimal `json:"total"`
	CreatedAt   time.Time       `json:"created_at"`
}
