package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktrackr/stocktrackr-api/internal/application/dto"
	"github.com/stocktrackr/stocktrackr-api/internal/application/usecase"
	"github.com/stocktrackr/stocktrackr-api/internal/domain"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de repositorio (en memoria, sin DB)
// ──────────────────────────────────────────────────────────────────────────────

type memProductRepo struct {
	products map[string]*entity.Product
	order    []string
}

func newMemProductRepo(products ...*entity.Product) *memProductRepo {
	r := &memProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *memProductRepo) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type memStockRepo struct {
	entries []*entity.StockEntry
	joined  []*entity.StockEntry // lo que devuelve ListWithProduct
}

func (r *memStockRepo) Create(_ context.Context, e *entity.StockEntry) error {
	r.entries = append(r.entries, e)
	return nil
}
func (r *memStockRepo) ListAll(context.Context) ([]*entity.StockEntry, error) {
	return r.entries, nil
}
func (r *memStockRepo) ListWithProduct(context.Context, int, int) ([]*entity.StockEntry, error) {
	return r.joined, nil
}

type memSaleRepo struct {
	sales  []*entity.SaleEntry
	joined []*entity.SaleEntry
}

func (r *memSaleRepo) Create(_ context.Context, s *entity.SaleEntry) error {
	r.sales = append(r.sales, s)
	return nil
}
func (r *memSaleRepo) ListAll(context.Context) ([]*entity.SaleEntry, error) { return r.sales, nil }
func (r *memSaleRepo) ListSince(context.Context, time.Time) ([]*entity.SaleEntry, error) {
	return r.sales, nil
}
func (r *memSaleRepo) ListWithProduct(context.Context, int, int) ([]*entity.SaleEntry, error) {
	return r.joined, nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func garri() *entity.Product {
	return &entity.Product{ID: "p1", Name: "Garri", CostPrice: dec("100"), SellingPrice: dec("150")}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCreate_Valido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	out, err := uc.Create(context.Background(), dto.ProductRequest{
		Name: "  Garri  ", CostPrice: dec("100"), SellingPrice: dec("150"),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Garri", out.Name, "el nombre debe guardarse sin espacios sobrantes")
	assert.True(t, out.CostPrice.Equal(dec("100")))
}

func TestProductCreate_Invalido(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	casos := []dto.ProductRequest{
		{Name: "   ", CostPrice: dec("1"), SellingPrice: dec("2")},          // nombre vacío
		{Name: "Garri", CostPrice: dec("-1"), SellingPrice: dec("2")},       // costo negativo
		{Name: "Garri", CostPrice: dec("1"), SellingPrice: dec("-0.01")},    // venta negativa
	}
	for _, in := range casos {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada: %+v", in)
	}

	// Precio cero sí es válido (regalos, promociones)
	_, err := uc.Create(context.Background(), dto.ProductRequest{Name: "Muestra", CostPrice: decimal.Zero, SellingPrice: decimal.Zero})
	assert.NoError(t, err)
}

func TestProductUpdate_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())

	_, err := uc.Update(context.Background(), "fantasma", dto.ProductRequest{
		Name: "X", CostPrice: dec("1"), SellingPrice: dec("2"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductDelete_NoExiste(t *testing.T) {
	uc := usecase.NewProductUseCase(newMemProductRepo())
	assert.ErrorIs(t, uc.Delete(context.Background(), "fantasma"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests StockUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordEntry_Valida(t *testing.T) {
	stockRepo := &memStockRepo{}
	uc := usecase.NewStockUseCase(stockRepo, newMemProductRepo(garri()))

	out, err := uc.RecordEntry(context.Background(), "u1", dto.StockEntryRequest{
		ProductID: "p1", Quantity: dec("2.5"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Garri", out.ProductName)
	assert.True(t, out.Quantity.Equal(dec("2.5")), "cantidades fraccionales permitidas")
	require.Len(t, stockRepo.entries, 1)
	assert.Equal(t, "u1", stockRepo.entries[0].CreatedBy)
}

func TestRecordEntry_Invalida(t *testing.T) {
	uc := usecase.NewStockUseCase(&memStockRepo{}, newMemProductRepo(garri()))

	// Cantidad cero o negativa
	for _, qty := range []string{"0", "-3"} {
		_, err := uc.RecordEntry(context.Background(), "u1", dto.StockEntryRequest{ProductID: "p1", Quantity: dec(qty)})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantity=%s", qty)
	}

	// Producto inexistente
	_, err := uc.RecordEntry(context.Background(), "u1", dto.StockEntryRequest{ProductID: "fantasma", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso: el historial resuelve el nombre en tres niveles:
// JOIN → catálogo → "Unknown".
func TestStockHistory_FallbackDeNombre(t *testing.T) {
	stockRepo := &memStockRepo{joined: []*entity.StockEntry{
		{ID: "e1", ProductID: "p1", ProductName: "Garri", Quantity: dec("1")},
		{ID: "e2", ProductID: "p1", ProductName: "", Quantity: dec("1")},        // JOIN vacío, catálogo resuelve
		{ID: "e3", ProductID: "borrado", ProductName: "", Quantity: dec("1")},   // huérfana
	}}
	uc := usecase.NewStockUseCase(stockRepo, newMemProductRepo(garri()))

	out, err := uc.History(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Garri", out[0].ProductName)
	assert.Equal(t, "Garri", out[1].ProductName)
	assert.Equal(t, "Unknown", out[2].ProductName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SaleUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordSale_Valida(t *testing.T) {
	saleRepo := &memSaleRepo{}
	uc := usecase.NewSaleUseCase(saleRepo, newMemProductRepo(garri()))

	out, err := uc.RecordSale(context.Background(), "u1", dto.SaleRequest{
		ProductID: "p1", Quantity: dec("4"),
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(dec("600")), "4 × 150 al precio vigente")
	require.Len(t, saleRepo.sales, 1)
}

func TestRecordSale_Invalida(t *testing.T) {
	uc := usecase.NewSaleUseCase(&memSaleRepo{}, newMemProductRepo(garri()))

	_, err := uc.RecordSale(context.Background(), "u1", dto.SaleRequest{ProductID: "p1", Quantity: dec("0")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordSale(context.Background(), "u1", dto.SaleRequest{ProductID: "fantasma", Quantity: dec("1")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Caso: en el historial el total usa el precio vigente; si el producto fue
// borrado la fila queda "Unknown" con total cero.
func TestSaleHistory_TotalYFallback(t *testing.T) {
	saleRepo := &memSaleRepo{joined: []*entity.SaleEntry{
		{ID: "s1", ProductID: "p1", ProductName: "Garri", Quantity: dec("2")},
		{ID: "s2", ProductID: "borrado", ProductName: "", Quantity: dec("5")},
	}}
	uc := usecase.NewSaleUseCase(saleRepo, newMemProductRepo(garri()))

	out, err := uc.History(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.True(t, out[0].Total.Equal(dec("300")), "2 × 150")
	assert.Equal(t, "Unknown", out[1].ProductName)
	assert.True(t, out[1].Total.Equal(decimal.Zero), "producto borrado: total cero")
}
