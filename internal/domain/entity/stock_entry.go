package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockEntry representa una entrada de inventario (stock-in) para un producto.
// Quantity es >= 0 y puede ser fraccional (se vende a granel).
// ProductName viaja denormalizado cuando la consulta hace JOIN con products;
// puede venir vacío y el consumidor resuelve el nombre con el índice de productos.
type StockEntry struct {
	ID          string
	ProductID   string
	Quantity    decimal.Decimal
	ProductName string // denormalizado (JOIN); vacío si no vino en la consulta
	CreatedBy   string // UserID
	CreatedAt   time.Time
}
