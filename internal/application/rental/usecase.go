package rental

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/internal/domain"
	"github.com/jhoicas/Energia-api/internal/domain/entity"
	"github.com/jhoicas/Energia-api/internal/domain/repository"
)

// RentEnergyUseCase ejecuta el arriendo de potencia de forma transaccional.
// La rutina rent_energy bloquea la fila del punto (SELECT FOR UPDATE), suma
// los arriendos ya confirmados y verifica el margen contra max_power_kw; dos
// llamadas concurrentes sobre el mismo punto nunca pueden sobre-comprometer
// la capacidad.
type RentEnergyUseCase struct {
	txRunner  TxRunner
	pointRepo repository.SupplyPointRepository
}

// NewRentEnergyUseCase construye el caso de uso.
func NewRentEnergyUseCase(txRunner TxRunner, pointRepo repository.SupplyPointRepository) *RentEnergyUseCase {
	return &RentEnergyUseCase{txRunner: txRunner, pointRepo: pointRepo}
}

// Rent valida la entrada, confirma que el punto exista y ejecuta la rutina
// dentro de una transacción: Commit si el arriendo fue aceptado, Rollback si
// fue rechazado. Un resultado con Success false y error nil es un rechazo de
// negocio (capacidad insuficiente); el caller lo distingue de un punto
// inexistente, que se reporta como domain.ErrPointNotFound.
//
// La operación NO es idempotente: dos llamadas idénticas crean dos arriendos
// y consumen capacidad dos veces.
func (uc *RentEnergyUseCase) Rent(ctx context.Context, pointID int64, in dto.RentEnergyRequest) (*dto.RentResultResponse, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return nil, domain.ErrMissingField
	}
	if in.QuantityPower == nil {
		return nil, domain.ErrMissingField
	}
	if !in.QuantityPower.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidPower
	}

	point, err := uc.pointRepo.GetByID(ctx, pointID)
	if err != nil {
		return nil, err
	}
	if point == nil {
		return nil, domain.ErrPointNotFound
	}

	var result *entity.RentResult
	err = uc.txRunner.Run(ctx, func(pointRepo repository.SupplyPointRepository) error {
		res, err := pointRepo.RentEnergy(ctx, pointID, in.CompanyName, *in.QuantityPower)
		if err != nil {
			return err
		}
		result = res
		if !res.Success {
			// Fuerza el Rollback; la rutina no insertó nada.
			return domain.ErrCapacityExceeded
		}
		return nil
	})
	if err != nil && !errors.Is(err, domain.ErrCapacityExceeded) {
		return nil, err
	}
	return &dto.RentResultResponse{Success: result.Success, Message: result.Message}, nil
}
