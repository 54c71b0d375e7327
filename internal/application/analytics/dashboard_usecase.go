// Package analytics contiene los casos de uso del dashboard y de los reportes
// de ingresos. El cálculo en sí es puro (internal/domain/report); aquí solo se
// orquesta la carga de datos y se arma el DTO.
package analytics

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stocktrackr/stocktrackr-api/internal/application/dto"
	"github.com/stocktrackr/stocktrackr-api/internal/domain"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/report"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/repository"
)

// DashboardConfig parámetros del resumen: umbral de stock bajo y zona horaria
// con la que se interpreta "hoy".
type DashboardConfig struct {
	LowStockThreshold decimal.Decimal
	Location          *time.Location
}

// DashboardUseCase genera el resumen del dashboard: stock actual, alerta de
// stock bajo, ventas de hoy e ingresos del mes en curso.
//
// Cada Refresh recalcula todo desde cero a partir de los streams completos;
// no hay actualización incremental. Los refresh solapados se resuelven con un
// token de secuencia monótono: un refresh que termina después de que otro más
// nuevo ya publicó descarta su resultado en vez de pisarlo.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockEntryRepository
	saleRepo    repository.SaleRepository
	cfg         DashboardConfig

	seq atomic.Uint64 // token de secuencia de refresh

	mu        sync.Mutex
	lastSeq   uint64
	committed *dto.DashboardSummaryDTO
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	stockRepo   repository.StockEntryRepository,
	saleRepo    repository.SaleRepository,
	cfg DashboardConfig,
) *DashboardUseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &DashboardUseCase{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		saleRepo:    saleRepo,
		cfg:         cfg,
	}
}

// GetSummary recalcula y devuelve el resumen con el reloj real.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	return uc.Refresh(ctx, time.Now())
}

// Committed devuelve el último resumen publicado, o nil si todavía no hubo un
// refresh exitoso.
func (uc *DashboardUseCase) Committed() *dto.DashboardSummaryDTO {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.committed
}

// Refresh recalcula el resumen completo para el instante "now".
//
// Tres lecturas en paralelo (productos, entradas de stock, ventas); si
// cualquiera falla se devuelve ErrDataUnavailable envuelto y NO se publica un
// resultado parcial: el último resumen comprometido sigue vigente.
func (uc *DashboardUseCase) Refresh(ctx context.Context, now time.Time) (*dto.DashboardSummaryDTO, error) {
	seq := uc.seq.Add(1)

	// ── Carga en paralelo de los tres streams ─────────────────────────────────
	type productsResult struct {
		products []*entity.Product
		err      error
	}
	type stockResult struct {
		entries []*entity.StockEntry
		err     error
	}
	type salesResult struct {
		sales []*entity.SaleEntry
		err   error
	}

	productsCh := make(chan productsResult, 1)
	stockCh := make(chan stockResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		products, err := uc.productRepo.List(ctx)
		productsCh <- productsResult{products, err}
	}()
	go func() {
		entries, err := uc.stockRepo.ListAll(ctx)
		stockCh <- stockResult{entries, err}
	}()
	go func() {
		sales, err := uc.saleRepo.ListAll(ctx)
		salesCh <- salesResult{sales, err}
	}()

	products := <-productsCh
	stock := <-stockCh
	sales := <-salesCh

	if products.err != nil {
		return nil, fmt.Errorf("%w: productos: %v", domain.ErrDataUnavailable, products.err)
	}
	if stock.err != nil {
		return nil, fmt.Errorf("%w: entradas de stock: %v", domain.ErrDataUnavailable, stock.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("%w: ventas: %v", domain.ErrDataUnavailable, sales.err)
	}

	snapshot := &report.Snapshot{
		Products:     products.products,
		StockEntries: stock.entries,
		Sales:        sales.sales,
	}
	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	summary := buildSummary(snapshot, uc.cfg, now)

	// ── Publicación ───────────────────────────────────────────────────────────
	// Si un refresh más nuevo ya publicó, este resultado está obsoleto: se
	// descarta y se devuelve la vista comprometida.
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if seq < uc.lastSeq {
		return uc.committed, nil
	}
	uc.lastSeq = seq
	uc.committed = summary
	return summary, nil
}

// buildSummary deriva las cuatro secciones del dashboard a partir de un
// snapshot ya validado. Función pura sobre (snapshot, cfg, now).
func buildSummary(s *report.Snapshot, cfg DashboardConfig, now time.Time) *dto.DashboardSummaryDTO {
	levels := report.StockLevels(s.StockEntries, s.Sales)

	// Stock actual de todo el catálogo, en el orden de la lista de productos;
	// un producto sin movimientos aparece con nivel 0.
	stockLevels := make([]dto.StockLevelDTO, 0, len(s.Products))
	for _, p := range s.Products {
		stockLevels = append(stockLevels, dto.StockLevelDTO{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    report.LevelOf(levels, p.ID),
		})
	}

	low := report.LowStock(s.Products, levels, cfg.LowStockThreshold)
	lowStock := make([]dto.StockLevelDTO, 0, len(low))
	for _, item := range low {
		lowStock = append(lowStock, dto.StockLevelDTO{
			ProductID:   item.Product.ID,
			ProductName: item.Product.Name,
			Quantity:    item.Quantity,
		})
	}

	daily := report.DailySummary(s.Sales, s.Products, now, cfg.Location)
	dailySales := make([]dto.DailySaleDTO, 0, len(daily.Rows))
	for _, row := range daily.Rows {
		dailySales = append(dailySales, dto.DailySaleDTO{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			Total:       row.Total,
		})
	}

	// Mes en curso = mismo mes calendario que "now", no una ventana rodante:
	// el 20 de agosto, una venta del 25 de julio no cuenta.
	income := report.CurrentMonthIncome(s.Sales, s.Products, now, cfg.Location)

	return &dto.DashboardSummaryDTO{
		StockLevels:   stockLevels,
		LowStock:      lowStock,
		DailySales:    dailySales,
		MonthlyIncome: toIncomeReportDTO(income),
	}
}

// toIncomeReportDTO convierte el resultado del motor al DTO de respuesta.
func toIncomeReportDTO(r report.IncomeResult) dto.IncomeReportDTO {
	rows := make([]dto.IncomeRowDTO, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, dto.IncomeRowDTO{
			ProductID:    row.ProductID,
			ProductName:  row.ProductName,
			Quantity:     row.Quantity,
			TotalCost:    row.TotalCost,
			TotalSelling: row.TotalSelling,
			Profit:       row.Profit,
		})
	}
	return dto.IncomeReportDTO{
		Window: string(r.Window),
		Rows:   rows,
		Totals: dto.IncomeTotalsDTO{
			TotalCost:    r.Totals.TotalCost,
			TotalSelling: r.Totals.TotalSelling,
			TotalProfit:  r.Totals.TotalProfit,
		},
		TotalSales:      r.SaleCount,
		OrphanedEntries: r.Orphaned,
	}
}
