package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo.
// CostPrice y SellingPrice son montos de moneda no negativos; el stock actual
// no se guarda aquí: se deriva de los stock_entries y sales (ver domain/report).
type Product struct {
	ID           string
	Name         string
	CostPrice    decimal.Decimal // precio de costo
	SellingPrice decimal.Decimal // precio de venta
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
