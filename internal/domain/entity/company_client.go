package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompanyClient representa el arriendo de potencia de un cliente sobre un punto
// de suministro. Se crea únicamente como efecto de rent_energy, nunca por CRUD
// directo. CompanyName es texto libre: el arrendatario no es una Company del sistema.
type CompanyClient struct {
	ID                  int64
	EnergySupplyPointID int64
	CompanyName         string
	QuantityPower       decimal.Decimal
	CreatedAt           time.Time
}
