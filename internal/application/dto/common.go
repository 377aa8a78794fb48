package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Energia-api/internal/domain"
)

// Los montos de potencia viajan como números JSON (no strings), manteniendo
// la aritmética interna en decimal para no acumular error de redondeo.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DateLayout formato de fecha aceptado y devuelto por la API.
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha YYYY-MM-DD estricta.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDate
	}
	return t, nil
}

// FormatDate serializa una fecha como YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ErrorResponse cuerpo de error HTTP. Error siempre está presente; Type
// discrimina la categoría y Payload lleva detalle estructurado cuando aplica
// (missing_fields, valid_statuses).
type ErrorResponse struct {
	Error   string `json:"error"`
	Type    string `json:"type,omitempty"`
	Payload any    `json:"payload,omitempty"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse respuesta del liveness probe.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
