// Package report implementa el motor de agregación de StockTrackr: niveles de
// stock actuales, alerta de stock bajo, desglose de ventas del día y resumen
// de ingresos/ganancia por ventana de tiempo.
//
// Todas las operaciones son funciones puras sobre un Snapshot explícito: sin
// reloj ambiente, sin I/O y sin estado escondido. Cada refresh recalcula todo
// desde cero; los resultados derivados nunca se persisten.
package report

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stocktrackr/stocktrackr-api/internal/domain"
	"github.com/stocktrackr/stocktrackr-api/internal/domain/entity"
)

// Snapshot es la foto completa de los tres streams leídos en un refresh.
// El motor solo lee; el Snapshot no se muta durante la agregación.
type Snapshot struct {
	Products     []*entity.Product
	StockEntries []*entity.StockEntry
	Sales        []*entity.SaleEntry
}

// ProductIndex construye el índice id -> producto del snapshot.
// Invariante de entrada: los ids de producto son únicos dentro del snapshot.
func (s *Snapshot) ProductIndex() map[string]*entity.Product {
	idx := make(map[string]*entity.Product, len(s.Products))
	for _, p := range s.Products {
		idx[p.ID] = p
	}
	return idx
}

// Validate verifica defensivamente los campos numéricos del snapshot y
// retorna domain.ErrInvalidRecord (envuelto con el registro ofensor) si algún
// precio es negativo, alguna entrada de stock es negativa o alguna venta no es
// positiva. La validación de formularios pertenece a la capa de entrada; esto
// evita que un dato malformado se propague silenciosamente a los reportes.
func (s *Snapshot) Validate() error {
	for _, p := range s.Products {
		if p.CostPrice.IsNegative() || p.SellingPrice.IsNegative() {
			return fmt.Errorf("%w: producto %s con precio negativo (cost=%s, selling=%s)",
				domain.ErrInvalidRecord, p.ID, p.CostPrice, p.SellingPrice)
		}
	}
	for _, e := range s.StockEntries {
		if e.Quantity.IsNegative() {
			return fmt.Errorf("%w: entrada de stock %s con cantidad negativa (%s)",
				domain.ErrInvalidRecord, e.ID, e.Quantity)
		}
	}
	for _, sale := range s.Sales {
		if !sale.Quantity.GreaterThan(decimal.Zero) {
			return fmt.Errorf("%w: venta %s con cantidad no positiva (%s)",
				domain.ErrInvalidRecord, sale.ID, sale.Quantity)
		}
	}
	return nil
}
