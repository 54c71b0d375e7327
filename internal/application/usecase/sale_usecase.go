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

// SaleUseCase registro y consulta de ventas.
type SaleUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, productRepo: productRepo}
}

// RecordSale registra una venta de un producto existente. La cantidad debe
// ser > 0. No se verifica stock disponible: el nivel neto puede quedar
// negativo y el dashboard lo muestra tal cual (es alarmante, no un error).
func (uc *SaleUseCase) RecordSale(ctx context.Context, userID string, in dto.SaleRequest) (*dto.SaleResponse, error) {
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
	sale := &entity.SaleEntry{
		ID:        uuid.New().String(),
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return &dto.SaleResponse{
		ID:          sale.ID,
		ProductID:   sale.ProductID,
		ProductName: product.Name,
		Quantity:    sale.Quantity,
		Total:       sale.Quantity.Mul(product.SellingPrice),
		CreatedAt:   sale.CreatedAt,
	}, nil
}

// History devuelve el historial de ventas, más reciente primero. El total de
// la línea se calcula con el precio de venta vigente del producto; si el
// producto fue borrado la fila muestra "Unknown" y total cero.
func (uc *SaleUseCase) History(ctx context.Context, page dto.PageRequest) ([]dto.SaleResponse, error) {
	page.DefaultPage()
	sales, err := uc.saleRepo.ListWithProduct(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	index := (&report.Snapshot{Products: products}).ProductIndex()

	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		total := decimal.Zero
		if p, ok := index[s.ProductID]; ok {
			total = s.Quantity.Mul(p.SellingPrice)
		}
		out = append(out, dto.SaleResponse{
			ID:          s.ID,
			ProductID:   s.ProductID,
			ProductName: report.ResolveProductName(s.ProductName, s.ProductID, index),
			Quantity:    s.Quantity,
			Total:       total,
			CreatedAt:   s.CreatedAt,
		})
	}
	return out, nil
}
