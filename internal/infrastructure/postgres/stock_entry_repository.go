package postgres

import (
	"context"
	"fmt"

	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/repository"
)

var _ repository.StockEntryRepository = (*StockEntryRepo)(nil)

// StockEntryRepo implementación del puerto StockEntryRepository sobre PostgreSQL.
type StockEntryRepo struct {
	q Querier
}

// NewStockEntryRepository construye el adaptador de persistencia para entradas de stock.
func NewStockEntryRepository(q Querier) *StockEntryRepo {
	return &StockEntryRepo{q: q}
}

// Create persiste una entrada de stock.
func (r *StockEntryRepo) Create(ctx context.Context, entry *entity.StockEntry) error {
	query := `
		INSERT INTO stock_entries (id, product_id, quantity, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.Quantity, entry.CreatedBy, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock entry: %w", err)
	}
	return nil
}

// ListAll devuelve todas las entradas de stock (para el cálculo de stock actual).
func (r *StockEntryRepo) ListAll(ctx context.Context) ([]*entity.StockEntry, error) {
	query := `
		SELECT id, product_id, quantity, created_by, created_at
		FROM stock_entries ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list stock entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Quantity, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// ListWithProduct devuelve el historial más reciente primero con el nombre del
// producto vía LEFT JOIN (vacío si el producto fue borrado).
func (r *StockEntryRepo) ListWithProduct(ctx context.Context, limit, offset int) ([]*entity.StockEntry, error) {
	query := `
		SELECT e.id, e.product_id, e.quantity, COALESCE(p.name, ''), e.created_by, e.created_at
		FROM stock_entries e
		LEFT JOIN products p ON p.id = e.product_id
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock entries with product: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockEntry
	for rows.Next() {
		var e entity.StockEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.Quantity, &e.ProductName, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
