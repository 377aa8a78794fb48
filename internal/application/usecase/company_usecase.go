package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/internal/domain"
	"github.com/jhoicas/Energia-api/internal/domain/entity"
	"github.com/jhoicas/Energia-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para compañías (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List devuelve todas las compañías en orden de inserción.
func (uc *CompanyUseCase) List(ctx context.Context) ([]*dto.CompanyResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanyToResponse(c))
	}
	return items, nil
}

// GetByID obtiene una compañía; (nil, nil) si no existe.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.CompanyToResponse(company), nil
}

// Create valida y persiste una nueva compañía. La fecha debe ser YYYY-MM-DD
// estricta y el estado uno de entity.ValidStatuses.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrMissingField
	}
	regDate, err := dto.ParseDate(in.RegistrationDate)
	if err != nil {
		return nil, err
	}
	if !entity.IsValidStatus(in.Status) {
		return nil, domain.ErrInvalidStatus
	}
	company := &entity.Company{
		Name:             in.Name,
		RegistrationDate: regDate,
		Status:           in.Status,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return dto.CompanyToResponse(company), nil
}

// Update aplica una actualización parcial: cada campo presente se valida como
// en Create y todos se confirman en un único UPDATE. (nil, nil) si la compañía
// no existe.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrMissingField
		}
		company.Name = *in.Name
	}
	if in.RegistrationDate != nil {
		regDate, err := dto.ParseDate(*in.RegistrationDate)
		if err != nil {
			return nil, err
		}
		company.RegistrationDate = regDate
	}
	if in.Status != nil {
		if !entity.IsValidStatus(*in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		company.Status = *in.Status
	}
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return dto.CompanyToResponse(company), nil
}

// Delete elimina la compañía; la BD elimina en cascada sus puntos y arriendos.
// Devuelve false si no existía.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// GetStatistics confirma que la compañía exista y delega en la rutina de
// agregación. Una compañía sin puntos obtiene ceros, no "no encontrada".
func (uc *CompanyUseCase) GetStatistics(ctx context.Context, id int64) (*dto.CompanyStatisticsResponse, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	stats, err := uc.repo.GetStatistics(ctx, id)
	if err != nil {
		return nil, err
	}
	if stats == nil {
		return nil, nil
	}
	return &dto.CompanyStatisticsResponse{
		CompanyID:         stats.CompanyID,
		TotalSupplyPoints: stats.TotalSupplyPoints,
		MaxTotalPower:     stats.MaxTotalPower,
	}, nil
}
