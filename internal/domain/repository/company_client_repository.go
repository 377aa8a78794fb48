package repository

import (
	"context"

	"github.com/jhoicas/Energia-api/internal/domain/entity"
)

// CompanyClientRepository define el puerto de persistencia para CompanyClient (DIP).
// No expone Create: los arriendos solo nacen de la rutina rent_energy.
type CompanyClientRepository interface {
	List(ctx context.Context) ([]*entity.CompanyClient, error)
	GetByID(ctx context.Context, id int64) (*entity.CompanyClient, error)
	// DeleteByID informa si existía una fila y fue eliminada; borrar un id
	// inexistente devuelve false, no un error.
	DeleteByID(ctx context.Context, id int64) (bool, error)
}
