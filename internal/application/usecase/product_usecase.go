package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stocktrackr/stocktrackr-api/internal/application/dto"
	"github.com/stocktrackr/stocktrackr-api/internal/domain"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos del catálogo.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create valida y persiste un producto nuevo. Los precios deben ser no
// negativos; los montos malformados no llegan aquí (el binding JSON de
// decimal rechaza no-números antes).
func (uc *ProductUseCase) Create(ctx context.Context, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(in.Name),
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto; domain.ErrNotFound si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List devuelve el catálogo completo (los formularios lo cargan entero).
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update modifica nombre y precios de un producto existente.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductInput(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	product.Name = strings.TrimSpace(in.Name)
	product.CostPrice = in.CostPrice
	product.SellingPrice = in.SellingPrice
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina el producto. Las ventas y entradas de stock que lo
// referencian quedan huérfanas: los reportes las descartan en silencio y los
// historiales muestran "Unknown".
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.productRepo.Delete(ctx, id)
}

func validateProductInput(in dto.ProductRequest) error {
	if strings.TrimSpace(in.Name) == "" {
		return domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return domain.ErrInvalidInput
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		CostPrice:    p.CostPrice,
		SellingPrice: p.SellingPrice,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
