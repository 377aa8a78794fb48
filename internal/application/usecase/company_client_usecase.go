package usecase

import (
	"context"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/internal/domain/repository"
)

// CompanyClientUseCase casos de uso de lectura y borrado de arriendos.
// El alta no existe aquí: las filas nacen de la rutina rent_energy.
type CompanyClientUseCase struct {
	repo repository.CompanyClientRepository
}

// NewCompanyClientUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyClientUseCase(repo repository.CompanyClientRepository) *CompanyClientUseCase {
	return &CompanyClientUseCase{repo: repo}
}

// List devuelve todos los arriendos en orden de inserción.
func (uc *CompanyClientUseCase) List(ctx context.Context) ([]*dto.CompanyClientResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.CompanyClientResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanyClientToResponse(c))
	}
	return items, nil
}

// GetByID obtiene un arriendo; (nil, nil) si no existe.
func (uc *CompanyClientUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyClientResponse, error) {
	client, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.CompanyClientToResponse(client), nil
}

// Delete elimina un arriendo; devuelve false si no existía (observable
// idempotente, nunca error por id ausente).
func (uc *CompanyClientUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.DeleteByID(ctx, id)
}
