package repository

import (
	"context"

	"github.com/jhoicas/Energia-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. GetByID devuelve (nil, nil)
// si la compañía no existe; los errores se reservan para fallas reales.
type CompanyRepository interface {
	List(ctx context.Context) ([]*entity.Company, error)
	GetByID(ctx context.Context, id int64) (*entity.Company, error)
	Create(ctx context.Context, company *entity.Company) error
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id int64) (bool, error)
	// GetStatistics invoca la rutina get_company_statistics.
	// Devuelve (nil, nil) si la rutina no reporta fila alguna.
	GetStatistics(ctx context.Context, companyID int64) (*entity.CompanyStatistics, error)
}
