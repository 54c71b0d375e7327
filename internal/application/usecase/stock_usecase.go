package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stocktrackr/stocktrackr-api/internal/application/dto"
	"github.com/stocktrackr/stocktrackr-api/internal/domain"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/report"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/repository"
)

// StockUseCase registro y consulta de entradas de stock (stock-in).
type StockUseCase struct {
	stockRepo   repository.StockEntryRepository
	productRepo repository.ProductRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(stockRepo repository.StockEntryRepository, productRepo repository.ProductRepository) *StockUseCase {
	return &StockUseCase{stockRepo: stockRepo, productRepo: productRepo}
}

// RecordEntry registra una entrada de stock para un producto existente.
// La cantidad debe ser > 0 (fraccional permitido).
func (uc *StockUseCase) RecordEntry(ctx context.Context, userID string, in dto.StockEntryRequest) (*dto.StockEntryResponse, error) {
	if in.ProductID == "" || !in.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	entry := &entity.StockEntry{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	if err := uc.stockRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return &dto.StockEntryResponse{
		ID:          entry.ID,
		ProductID:   entry.ProductID,
		ProductName: product.Name,
		Quantity:    entry.Quantity,
		CreatedAt:   entry.CreatedAt,
	}, nil
}

// History devuelve el historial de entradas, más reciente primero, con el
// nombre del producto resuelto (JOIN → catálogo → "Unknown").
func (uc *StockUseCase) History(ctx context.Context, page dto.PageRequest) ([]dto.StockEntryResponse, error) {
	page.DefaultPage()
	entries, err := uc.stockRepo.ListWithProduct(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := (&report.Snapshot{Products: products}).ProductIndex()

	out := make([]dto.StockEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.StockEntryResponse{
			ID:          e.ID,
			ProductID:   e.ProductID,
			ProductName: report.ResolveProductName(e.ProductName, e.ProductID, index),
			Quantity:    e.Quantity,
			CreatedAt:   e.CreatedAt,
		})
	}
	return out, nil
}
