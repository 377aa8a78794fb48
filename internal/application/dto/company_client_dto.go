package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Energia-api/internal/domain/entity"
)

// CompanyClientResponse salida de un arriendo registrado sobre un punto.
type CompanyClientResponse struct {
	ID                  int64           `json:"id"`
	EnergySupplyPointID int64           `json:"energy_supply_point_id"`
	CompanyName         string          `json:"company_name"`
	QuantityPower       decimal.Decimal `json:"quantity_power"`
	CreatedAt           time.Time       `json:"created_at"`
}

// CompanyClientToResponse convierte la entidad a su representación de transporte.
func CompanyClientToResponse(c *entity.CompanyClient) *CompanyClientResponse {
	if c == nil {
		return nil
	}
	return &CompanyClientResponse{
		ID:                  c.ID,
		EnergySupplyPointID: c.EnergySupplyPointID,
		CompanyName:         c.CompanyName,
		QuantityPower:       c.QuantityPower,
		CreatedAt:           c.CreatedAt,
	}
}
