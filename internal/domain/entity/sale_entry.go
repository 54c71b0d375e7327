package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleEntry representa una venta registrada de un producto.
// Quantity es positiva; CreatedAt es el timestamp usado por las ventanas de
// tiempo de los reportes (día actual, últimos 7 días, último mes).
type SaleEntry struct {
	ID          string
	ProductID   string
	Quantity    decimal.Decimal
	ProductName string // denormalizado (JOIN); vacío si no vino en la consulta
	CreatedBy   string // UserID
	CreatedAt   time.Time
}
