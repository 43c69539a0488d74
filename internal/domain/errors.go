package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrInsufficientStock  = errors.New("stock insuficiente en el lote")
	ErrItemInactive       = errors.New("el artículo de inventario está inactivo")
	ErrMissingExpiration  = errors.New("el lote no tiene fecha de vencimiento")
	ErrBatchInUse         = errors.New("el artículo tiene lotes en uso")
)
