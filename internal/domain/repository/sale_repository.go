package repository

import (
	"context"
	"time"

	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas (DIP).
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.SaleEntry) error

	// ListAll devuelve todas las ventas (ventana "all time" y stock actual).
	ListAll(ctx context.Context) ([]*entity.SaleEntry, error)

	// ListSince devuelve las ventas con created_at >= from. Permite aplicar el
	// límite inferior de la ventana en el servidor de datos; el resultado es
	// equivalente a filtrar ListAll en memoria.
	ListSince(ctx context.Context, from time.Time) ([]*entity.SaleEntry, error)

	// ListWithProduct devuelve el historial más reciente primero, con el
	// nombre del producto denormalizado vía LEFT JOIN.
	ListWithProduct(ctx context.Context, limit, offset int) ([]*entity.SaleEntry, error)
}
