package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.SaleEntry) error {
	query := `
		INSERT INTO sales (id, product_id, quantity, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.ProductID, sale.Quantity, sale.CreatedBy, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// ListAll devuelve todas las ventas (ventana "all time" y stock actual).
func (r *SaleRepo) ListAll(ctx context.Context) ([]*entity.SaleEntry, error) {
	query := `
		SELECT id, product_id, quantity, created_by, created_at
		FROM sales ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListSince devuelve las ventas con created_at >= from (límite inferior
// inclusivo, igual que el filtro en memoria del motor de reportes).
func (r *SaleRepo) ListSince(ctx context.Context, from time.Time) ([]*entity.SaleEntry, error) {
	query := `
		SELECT id, product_id, quantity, created_by, created_at
		FROM sales WHERE created_at >= $1 ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, from)
	if err != nil {
		return nil, fmt.Errorf("list sales since: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListWithProduct devuelve el historial más reciente primero con el nombre del
// producto vía LEFT JOIN (vacío si el producto fue borrado).
func (r *SaleRepo) ListWithProduct(ctx context.Context, limit, offset int) ([]*entity.SaleEntry, error) {
	query := `
		SELECT s.id, s.product_id, s.quantity, COALESCE(p.name, ''), s.created_by, s.created_at
		FROM sales s
		LEFT JOIN products p ON p.id = s.product_id
		ORDER BY s.created_at DESC, s.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list sales with product: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleEntry
	for rows.Next() {
		var s entity.SaleEntry
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.ProductName, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func scanSales(rows pgx.Rows) ([]*entity.SaleEntry, error) {
	var list []*entity.SaleEntry
	for rows.Next() {
		var s entity.SaleEntry
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
