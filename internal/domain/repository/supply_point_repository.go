package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Energia-api/internal/domain/entity"
)

// SupplyPointRepository define el puerto de persistencia para SupplyPoint (DIP).
type SupplyPointRepository interface {
	List(ctx context.Context) ([]*entity.SupplyPoint, error)
	GetByID(ctx context.Context, id int64) (*entity.SupplyPoint, error)
	Create(ctx context.Context, point *entity.SupplyPoint) error
	Update(ctx context.Context, point *entity.SupplyPoint) error
	Delete(ctx context.Context, id int64) (bool, error)
	// SearchByDateRange delega en la rutina search_energy_supply_points.
	// Un límite nil significa "sin cota" por ese lado; ambos son combinables.
	SearchByDateRange(ctx context.Context, dateFrom, dateTo *time.Time) ([]*entity.SupplyPoint, error)
	// RentEnergy invoca la rutina rent_energy. Debe ejecutarse dentro de una
	// transacción: la rutina bloquea la fila del punto (FOR UPDATE) y el caller
	// confirma o revierte según Success.
	RentEnergy(ctx context.Context, pointID int64, companyName string, quantityPower decimal.Decimal) (*entity.RentResult, error)
}
