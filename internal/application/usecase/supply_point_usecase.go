package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/internal/domain"
	"github.com/jhoicas/Energia-api/internal/domain/entity"
	"github.com/jhoicas/Energia-api/internal/domain/repository"
)

// SupplyPointUseCase aplica reglas de negocio para puntos de suministro.
// Verifica la existencia de la compañía referenciada antes de cualquier escritura.
type SupplyPointUseCase struct {
	pointRepo   repository.SupplyPointRepository
	companyRepo repository.CompanyRepository
}

// NewSupplyPointUseCase construye el caso de uso con los puertos de persistencia.
func NewSupplyPointUseCase(pointRepo repository.SupplyPointRepository, companyRepo repository.CompanyRepository) *SupplyPointUseCase {
	return &SupplyPointUseCase{pointRepo: pointRepo, companyRepo: companyRepo}
}

// List devuelve todos los puntos en orden de inserción.
func (uc *SupplyPointUseCase) List(ctx context.Context) ([]*dto.SupplyPointResponse, error) {
	list, err := uc.pointRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.SupplyPointResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.SupplyPointToResponse(p))
	}
	return items, nil
}

// GetByID obtiene un punto; (nil, nil) si no existe.
func (uc *SupplyPointUseCase) GetByID(ctx context.Context, id int64) (*dto.SupplyPointResponse, error) {
	point, err := uc.pointRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.SupplyPointToResponse(point), nil
}

// Create valida y persiste un nuevo punto. La compañía referenciada debe
// existir antes de escribir nada; si no, domain.ErrCompanyNotFound.
func (uc *SupplyPointUseCase) Create(ctx context.Context, in dto.CreateSupplyPointRequest) (*dto.SupplyPointResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrMissingField
	}
	connDate, err := dto.ParseDate(in.ConnectionDate)
	if err != nil {
		return nil, err
	}
	if in.MaxPowerKW == nil {
		return nil, domain.ErrMissingField
	}
	if !in.MaxPowerKW.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidPower
	}
	company, err := uc.companyRepo.GetByID(ctx, in.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrCompanyNotFound
	}
	point := &entity.SupplyPoint{
		Name:           in.Name,
		CompanyID:      in.CompanyID,
		ConnectionDate: connDate,
		MaxPowerKW:     *in.MaxPowerKW,
	}
	if err := uc.pointRepo.Create(ctx, point); err != nil {
		return nil, err
	}
	return dto.SupplyPointToResponse(point), nil
}

// Update aplica una actualización parcial. Si viene company_id, la nueva
// compañía debe existir o no se confirma ningún campo (un único UPDATE al
// final). (nil, nil) si el punto no existe.
func (uc *SupplyPointUseCase) Update(ctx context.Context, id int64, in dto.UpdateSupplyPointRequest) (*dto.SupplyPointResponse, error) {
	point, err := uc.pointRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, nil
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrMissingField
		}
		point.Name = *in.Name
	}
	if in.CompanyID != nil {
		company, err := uc.companyRepo.GetByID(ctx, *in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, domain.ErrCompanyNotFound
		}
		point.CompanyID = *in.CompanyID
	}
	if in.ConnectionDate != nil {
		connDate, err := dto.ParseDate(*in.ConnectionDate)
		if err != nil {
			return nil, err
		}
		point.ConnectionDate = connDate
	}
	if in.MaxPowerKW != nil {
		if !in.MaxPowerKW.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidPower
		}
		point.MaxPowerKW = *in.MaxPowerKW
	}
	if err := uc.pointRepo.Update(ctx, point); err != nil {
		return nil, err
	}
	return dto.SupplyPointToResponse(point), nil
}

// Delete elimina el punto; la BD elimina en cascada sus arriendos.
// Devuelve false si no existía.
func (uc *SupplyPointUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.pointRepo.Delete(ctx, id)
}

// Search busca puntos por rango de fecha de conexión (límites inclusivos y
// opcionales, combinables de forma independiente).
func (uc *SupplyPointUseCase) Search(ctx context.Context, dateFrom, dateTo string) ([]*dto.SupplyPointResponse, error) {
	var from, to *time.Time
	if dateFrom != "" {
		t, err := dto.ParseDate(dateFrom)
		if err != nil {
			return nil, err
		}
		from = &t
	}
	if dateTo != "" {
		t, err := dto.ParseDate(dateTo)
		if err != nil {
			return nil, err
		}
		to = &t
	}
	list, err := uc.pointRepo.SearchByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	items := make([]*dto.SupplyPointResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.SupplyPointToResponse(p))
	}
	return items, nil
}
