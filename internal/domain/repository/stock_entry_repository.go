package repository

import (
	"context"

	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
)

// StockEntryRepository define el puerto de persistencia para entradas de stock (DIP).
type StockEntryRepository interface {
	Create(ctx context.Context, entry *entity.StockEntry) error

	// ListAll devuelve todas las entradas (para el cálculo de stock actual).
	ListAll(ctx context.Context) ([]*entity.StockEntry, error)

	// ListWithProduct devuelve el historial más reciente primero, con el
	// nombre del producto denormalizado vía LEFT JOIN (puede venir vacío si
	// el producto fue borrado).
	ListWithProduct(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error)
}
