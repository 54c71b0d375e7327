package report

import "github.com/stocktrackr/stocktrackr-api/internal/domain/entity"

// UnknownProductName es el centinela que se muestra cuando una referencia de
// producto no resuelve a nada (el producto fue borrado después del registro).
const UnknownProductName = "Unknown"

// ResolveProductName resuelve el nombre a mostrar de un producto referenciado:
// usa el nombre denormalizado del JOIN si vino, si no busca en el índice de
// productos, y si tampoco está degrada a "Unknown". Nunca falla: los
// historiales toleran referencias huérfanas.
func ResolveProductName(joined, productID string, index map[string]*entity.Product) string {
	if joined != "" {
		return joined
	}
	if p, ok := index[productID]; ok {
		return p.Name
	}
	return UnknownProductName
}
