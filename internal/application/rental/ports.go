package rental

import (
	"context"

	"github.com/jhoicas/Energia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio atado a esa tx. Garantiza atomicidad para el arriendo de
// potencia: Commit si fn devuelve nil, Rollback si devuelve error.
type TxRunner interface {
	Run(ctx context.Context, fn func(pointRepo repository.SupplyPointRepository) error) error
}
