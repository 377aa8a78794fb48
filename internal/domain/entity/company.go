package entity

import "time"

// Estados válidos de una compañía (deben coincidir con el CHECK de la tabla companies).
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)

// ValidStatuses lista los estados aceptados, en el orden que se publica en los errores de validación.
var ValidStatuses = []string{StatusActive, StatusInactive, StatusPending}

// IsValidStatus informa si s es un estado de compañía aceptado.
func IsValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive || s == StatusPending
}

// Company representa una compañía proveedora de energía.
// Al eliminarla, la BD elimina en cascada sus puntos de suministro
// y, transitivamente, los arriendos de esos puntos.
type Company struct {
	ID               int64
	Name             string
	RegistrationDate time.Time // solo fecha (DATE en la BD)
	Status           string    // ver constantes Status*
	CreatedAt        time.Time
}
