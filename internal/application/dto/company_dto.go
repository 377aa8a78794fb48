package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Energia-api/internal/domain/entity"
)

// CreateCompanyRequest entrada para crear una compañía.
type CreateCompanyRequest struct {
	Name             string `json:"name"`
	RegistrationDate string `json:"registration_date"`
	Status           string `json:"status"`
}

// UpdateCompanyRequest entrada para actualización parcial (solo se aplican
// los campos presentes).
type UpdateCompanyRequest struct {
	Name             *string `json:"name"`
	RegistrationDate *string `json:"registration_date"`
	Status           *string `json:"status"`
}

// CompanyResponse salida de una compañía.
type CompanyResponse struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	RegistrationDate string    `json:"registration_date"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// CompanyStatisticsResponse agregado por compañía (rutina get_company_statistics).
type CompanyStatisticsResponse struct {
	CompanyID         int64           `json:"company_id"`
	TotalSupplyPoints int64           `json:"total_supply_points"`
	MaxTotalPower     decimal.Decimal `json:"max_total_power"`
}

// CompanyToResponse convierte la entidad a su representación de transporte.
func CompanyToResponse(c *entity.Company) *CompanyResponse {
	if c == nil {
		return nil
	}
	return &CompanyResponse{
		ID:               c.ID,
		Name:             c.Name,
		RegistrationDate: FormatDate(c.RegistrationDate),
		Status:           c.Status,
		CreatedAt:        c.CreatedAt,
	}
}
