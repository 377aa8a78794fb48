package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrCompanyNotFound  = errors.New("compañía no encontrada")
	ErrPointNotFound    = errors.New("punto de suministro no encontrado")
	ErrInvalidDate      = errors.New("formato de fecha inválido, use YYYY-MM-DD")
	ErrInvalidStatus    = errors.New("estado inválido")
	ErrInvalidPower     = errors.New("la potencia debe ser mayor que cero")
	ErrCapacityExceeded = errors.New("capacidad insuficiente en el punto de suministro")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrForeignKey       = errors.New("referencia a un registro inexistente")
	ErrMissingField     = errors.New("campo requerido ausente")
)
