package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Energia-api/internal/domain/entity"
)

// CreateSupplyPointRequest entrada para crear un punto de suministro.
// MaxPowerKW es puntero para distinguir campo ausente (falta el dato) de un
// cero explícito (potencia inválida).
type CreateSupplyPointRequest struct {
	Name           string           `json:"name"`
	CompanyID      int64            `json:"company_id"`
	ConnectionDate string           `json:"connection_date"`
	MaxPowerKW     *decimal.Decimal `json:"max_power_kw"`
}

// UpdateSupplyPointRequest entrada para actualización parcial. Si CompanyID
// viene presente, la nueva compañía debe existir o no se aplica ningún campo.
type UpdateSupplyPointRequest struct {
	Name           *string          `json:"name"`
	CompanyID      *int64           `json:"company_id"`
	ConnectionDate *string          `json:"connection_date"`
	MaxPowerKW     *decimal.Decimal `json:"max_power_kw"`
}

// SupplyPointResponse salida de un punto de suministro.
type SupplyPointResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	CompanyID      int64           `json:"company_id"`
	ConnectionDate string          `json:"connection_date"`
	MaxPowerKW     decimal.Decimal `json:"max_power_kw"`
	CreatedAt      time.Time       `json:"created_at"`
}

// RentEnergyRequest entrada para arrendar potencia de un punto.
// QuantityPower es puntero por la misma razón que CreateSupplyPointRequest.
type RentEnergyRequest struct {
	CompanyName   string           `json:"company_name"`
	QuantityPower *decimal.Decimal `json:"quantity_power"`
}

// RentResultResponse resultado del arriendo: Success false lleva en Message
// la causa del rechazo.
type RentResultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SupplyPointToResponse convierte la entidad a su representación de transporte.
func SupplyPointToResponse(p *entity.SupplyPoint) *SupplyPointResponse {
	if p == nil {
		return nil
	}
	return &SupplyPointResponse{
		ID:             p.ID,
		Name:           p.Name,
		CompanyID:      p.CompanyID,
		ConnectionDate: FormatDate(p.ConnectionDate),
		MaxPowerKW:     p.MaxPowerKW,
		CreatedAt:      p.CreatedAt,
	}
}
