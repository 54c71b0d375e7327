package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")

	// ErrInvalidRecord: un registro del snapshot tiene campos numéricos
	// malformados (ej. precio negativo). La validación de formularios vive en
	// la capa de entrada; esto es la red de seguridad del motor de reportes.
	ErrInvalidRecord = errors.New("registro inválido")

	// ErrDataUnavailable: falló la lectura de alguno de los streams
	// (products, stock_entries, sales). No se entregan resultados parciales.
	ErrDataUnavailable = errors.New("datos no disponibles")
)
