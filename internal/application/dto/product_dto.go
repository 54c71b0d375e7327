package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest cuerpo de POST/PUT /api/products.
type ProductRequest struct {
	Name         string          `json:"name"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// ProductResponse representación HTTP de un producto.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
