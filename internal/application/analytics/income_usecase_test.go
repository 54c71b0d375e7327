package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocktrackr/stocktrackr-api/internal/application/analytics"
	"github.com/stocktrackr/stocktrackr-api/internal/domain"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests GetReport
// ──────────────────────────────────────────────────────────────────────────────

// Caso: ventana inválida → ErrInvalidInput antes de tocar los repositorios.
func TestGetReport_VentanaInvalida(t *testing.T) {
	pr, _, sl := staticRepos(nil, nil, nil)
	uc := analytics.NewIncomeUseCase(pr, sl)

	out, err := uc.GetReport(context.Background(), "quarterly", refNow)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Caso: ventana acotada → las ventas se piden con ListSince y el límite
// inferior correcto (7d = exactamente 168 horas atrás).
func TestGetReport_VentanaAcotadaUsaListSince(t *testing.T) {
	products := []*entity.Product{product("p1", "Garri", "100", "150")}
	pr := &fakeProductRepo{list: func(context.Context) ([]*entity.Product, error) { return products, nil }}

	var gotFrom time.Time
	sl := &fakeSaleRepo{
		listSince: func(_ context.Context, from time.Time) ([]*entity.SaleEntry, error) {
			gotFrom = from
			return []*entity.SaleEntry{saleAt("p1", "4", refNow.Add(-24 * time.Hour))}, nil
		},
	}
	uc := analytics.NewIncomeUseCase(pr, sl)

	out, err := uc.GetReport(context.Background(), "7d", refNow)
	require.NoError(t, err)
	assert.True(t, refNow.Add(-7*24*time.Hour).Equal(gotFrom),
		"el límite inferior de 7d son 168 horas exactas atrás")

	assert.Equal(t, "7d", out.Window)
	assert.Equal(t, 1, out.TotalSales)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Garri", out.Rows[0].ProductName)
	assert.True(t, out.Totals.TotalProfit.Equal(dec("200")), "4 × (150 − 100)")
}

// Caso: ventana "all" (y vacía) → se piden todas las ventas con ListAll.
func TestGetReport_AllTimeUsaListAll(t *testing.T) {
	products := []*entity.Product{product("p1", "Garri", "100", "150")}
	pr := &fakeProductRepo{list: func(context.Context) ([]*entity.Product, error) { return products, nil }}

	listAllCalls := 0
	sl := &fakeSaleRepo{
		listAll: func(context.Context) ([]*entity.SaleEntry, error) {
			listAllCalls++
			return []*entity.SaleEntry{
				saleAt("p1", "1", refNow.AddDate(-1, 0, 0)), // hace un año: igual cuenta
				saleAt("p1", "2", refNow.Add(-time.Hour)),
			}, nil
		},
	}
	uc := analytics.NewIncomeUseCase(pr, sl)

	for _, window := range []string{"all", ""} {
		out, err := uc.GetReport(context.Background(), window, refNow)
		require.NoError(t, err, "window=%q", window)
		assert.Equal(t, "all", out.Window)
		assert.Equal(t, 2, out.TotalSales)
		assert.True(t, out.Totals.TotalSelling.Equal(dec("450")), "3 × 150")
	}
	assert.Equal(t, 2, listAllCalls)
}

// Caso: venta huérfana dentro de la ventana → excluida de filas y totales
// pero contada en total_sales y orphaned_entries.
func TestGetReport_VentaHuerfana(t *testing.T) {
	products := []*entity.Product{product("p1", "Garri", "100", "150")}
	pr := &fakeProductRepo{list: func(context.Context) ([]*entity.Product, error) { return products, nil }}
	sl := &fakeSaleRepo{
		listAll: func(context.Context) ([]*entity.SaleEntry, error) {
			return []*entity.SaleEntry{
				saleAt("p1", "2", refNow.Add(-time.Hour)),
				saleAt("borrado", "9", refNow.Add(-time.Hour)),
			}, nil
		},
	}
	uc := analytics.NewIncomeUseCase(pr, sl)

	out, err := uc.GetReport(context.Background(), "all", refNow)
	require.NoError(t, err)
	assert.Equal(t, 2, out.TotalSales)
	assert.Equal(t, 1, out.OrphanedEntries)
	require.Len(t, out.Rows, 1)
	assert.True(t, out.Totals.TotalSelling.Equal(dec("300")), "solo la venta con producto vivo")
}

// Caso: fallo leyendo ventas → ErrDataUnavailable envuelto.
func TestGetReport_FalloDeCarga(t *testing.T) {
	pr := &fakeProductRepo{list: func(context.Context) ([]*entity.Product, error) { return nil, nil }}
	sl := &fakeSaleRepo{
		listAll: func(context.Context) ([]*entity.SaleEntry, error) {
			return nil, errors.New("timeout")
		},
	}
	uc := analytics.NewIncomeUseCase(pr, sl)

	out, err := uc.GetReport(context.Background(), "all", refNow)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
}
