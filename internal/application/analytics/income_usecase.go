package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/stocktrackr/stocktrackr-api/internal/application/dto"
	"github.com/stocktrackr/stocktrackr-api/internal/domain"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/report"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/repository"
)

// IncomeUseCase genera el reporte de ingresos/ganancia por ventana de tiempo
// (7d, month, all).
type IncomeUseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewIncomeUseCase construye el caso de uso.
func NewIncomeUseCase(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) *IncomeUseCase {
	return &IncomeUseCase{productRepo: productRepo, saleRepo: saleRepo}
}

// GetReport arma el reporte de la ventana pedida con "now" como instante de
// referencia. Para ventanas acotadas el límite inferior se aplica en la
// consulta (ListSince); el resultado es idéntico a filtrar en memoria.
func (uc *IncomeUseCase) GetReport(ctx context.Context, window string, now time.Time) (*dto.IncomeReportDTO, error) {
	w, err := report.ParseWindow(window)
	if err != nil {
		return nil, err
	}
	lower, bounded := w.LowerBound(now)

	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type salesResult struct {
		sales []*entity.SaleEntry
		err   error
	}
	productsCh := make(chan productsResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		products, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		var (
			sales []*entity.SaleEntry
			err   error
		)
		if bounded {
			sales, err = uc.saleRepo.ListSince(ctx, lower)
		} else {
			sales, err = uc.saleRepo.ListAll(ctx)
		}
		salesCh <- salesResult{sales, err}
	}()

	products := <-productsCh
	sales := <-salesCh

	if products.err != nil {
		return nil, fmt.Errorf("%w: productos: %v", domain.ErrDataUnavailable, products.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("%w: ventas: %v", domain.ErrDataUnavailable, sales.err)
	}

	snapshot := &report.Snapshot{Products: products.products, Sales: sales.sales}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	result := report.IncomeSummary(sales.sales, products.products, w, now)
	out := toIncomeReportDTO(result)
	return &out, nil
}
