package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplyPoint representa un punto de suministro de energía de una compañía.
// MaxPowerKW es la capacidad máxima arrendable del punto (NUMERIC(10,2)).
type SupplyPoint struct {
	ID             int64
	Name           string
	CompanyID      int64
	ConnectionDate time.Time // solo fecha (DATE en la BD)
	MaxPowerKW     decimal.Decimal
	CreatedAt      time.Time
}

// CompanyStatistics agregado por compañía calculado por la rutina get_company_statistics.
// MaxTotalPower es la suma de max_power_kw de los puntos de la compañía (0 si no tiene).
type CompanyStatistics struct {
	CompanyID         int64
	TotalSupplyPoints int64
	MaxTotalPower     decimal.Decimal
}

// RentResult resultado de la rutina transaccional rent_energy.
type RentResult struct {
	Success bool
	Message string
}
