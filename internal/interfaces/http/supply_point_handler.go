package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/pkg/logger"
)

// SupplyPointService contrato que el handler exige al caso de uso CRUD/búsqueda.
type SupplyPointService interface {
	List(ctx context.Context) ([]*dto.SupplyPointResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.SupplyPointResponse, error)
	Create(ctx context.Context, in dto.CreateSupplyPointRequest) (*dto.SupplyPointResponse, error)
	Update(ctx context.Context, id int64, in dto.UpdateSupplyPointRequest) (*dto.SupplyPointResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Search(ctx context.Context, dateFrom, dateTo string) ([]*dto.SupplyPointResponse, error)
}

// RentalService contrato del caso de uso transaccional de arriendo.
type RentalService interface {
	Rent(ctx context.Context, pointID int64, in dto.RentEnergyRequest) (*dto.RentResultResponse, error)
}

// SupplyPointHandler maneja las peticiones HTTP para puntos de suministro,
// incluida la búsqueda por rango de fechas y el arriendo de potencia.
type SupplyPointHandler struct {
	svc    SupplyPointService
	rental RentalService
	log    *logger.Logger
}

// NewSupplyPointHandler construye el handler inyectando los casos de uso.
func NewSupplyPointHandler(svc SupplyPointService, rental RentalService, log *logger.Logger) *SupplyPointHandler {
	return &SupplyPointHandler{svc: svc, rental: rental, log: log}
}

// List godoc
// @Summary      Listar puntos de suministro
// @Tags         energy-supply-points
// @Produce      json
// @Success      200  {array}  dto.SupplyPointResponse
// @Router       /api/energy-supply-points [get]
func (h *SupplyPointHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener punto de suministro por ID
// @Tags         energy-supply-points
// @Produce      json
// @Param        id   path  int  true  "ID del punto"
// @Success      200  {object}  dto.SupplyPointResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/energy-supply-points/{id} [get]
func (h *SupplyPointHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "Energy supply point not found")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear punto de suministro
// @Tags         energy-supply-points
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSupplyPointRequest  true  "Datos del punto"
// @Success      201   {object}  dto.SupplyPointResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/energy-supply-points [post]
func (h *SupplyPointHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSupplyPointRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.CompanyID == 0 {
		missing = append(missing, "company_id")
	}
	if in.ConnectionDate == "" {
		missing = append(missing, "connection_date")
	}
	// Un cero explícito no es campo ausente: pasa al caso de uso, que lo
	// rechaza como potencia inválida.
	if in.MaxPowerKW == nil {
		missing = append(missing, "max_power_kw")
	}
	if len(missing) > 0 {
		return missingFields(c, missing)
	}
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar punto de suministro (parcial)
// @Tags         energy-supply-points
// @Accept       json
// @Produce      json
// @Param        id    path  int                           true  "ID del punto"
// @Param        body  body  dto.UpdateSupplyPointRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.SupplyPointResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/energy-supply-points/{id} [put]
func (h *SupplyPointHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	var in dto.UpdateSupplyPointRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == nil && in.CompanyID == nil && in.ConnectionDate == nil && in.MaxPowerKW == nil {
		return validation(c, "No data provided", nil)
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "Energy supply point not found")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar punto de suministro (cascada sobre arriendos)
// @Tags         energy-supply-points
// @Produce      json
// @Param        id   path  int  true  "ID del punto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/energy-supply-points/{id} [delete]
func (h *SupplyPointHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	deleted, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return notFound(c, "Energy supply point not found")
	}
	return c.JSON(dto.MessageResponse{Message: "Energy supply point deleted successfully"})
}

// Search godoc
// @Summary      Buscar puntos por rango de fecha de conexión
// @Tags         energy-supply-points
// @Produce      json
// @Param        date_from  query  string  false  "Límite inferior inclusivo (YYYY-MM-DD)"
// @Param        date_to    query  string  false  "Límite superior inclusivo (YYYY-MM-DD)"
// @Success      200  {array}   dto.SupplyPointResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/energy-supply-points/search [get]
func (h *SupplyPointHandler) Search(c *fiber.Ctx) error {
	out, err := h.svc.Search(c.UserContext(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Rent godoc
// @Summary      Arrendar potencia de un punto
// @Tags         energy-supply-points
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del punto"
// @Param        body  body  dto.RentEnergyRequest  true  "Arrendatario y potencia"
// @Success      201   {object}  dto.RentResultResponse
// @Failure      400   {object}  dto.RentResultResponse  "Rechazo por capacidad insuficiente"
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/energy-supply-points/{id}/rentals [post]
func (h *SupplyPointHandler) Rent(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	var in dto.RentEnergyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	var missing []string
	if in.CompanyName == "" {
		missing = append(missing, "company_name")
	}
	if in.QuantityPower == nil {
		missing = append(missing, "quantity_power")
	}
	if len(missing) > 0 {
		return missingFields(c, missing)
	}
	out, err := h.rental.Rent(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !out.Success {
		return c.Status(fiber.StatusBadRequest).JSON(out)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
