package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntryRequest cuerpo de POST /api/stock/entries.
type StockEntryRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"` // > 0, puede ser fraccional
}

// StockEntryResponse fila del historial de stock. ProductName ya viene
// resuelto (JOIN → lookup → "Unknown").
type StockEntryResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
}
