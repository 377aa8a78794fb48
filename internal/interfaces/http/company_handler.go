package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/pkg/logger"
)

// CompanyService contrato que el handler exige al caso de uso (permite
// sustituir fakes en tests).
type CompanyService interface {
	List(ctx context.Context) ([]*dto.CompanyResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CompanyResponse, error)
	Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error)
	Update(ctx context.Context, id int64, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
	GetStatistics(ctx context.Context, id int64) (*dto.CompanyStatisticsResponse, error)
}

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	svc CompanyService
	log *logger.Logger
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(svc CompanyService, log *logger.Logger) *CompanyHandler {
	return &CompanyHandler{svc: svc, log: log}
}

// List godoc
// @Summary      Listar compañías
// @Tags         companies
// @Produce      json
// @Success      200  {array}  dto.CompanyResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener compañía por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la compañía"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "Company not found")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear compañía
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la compañía"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.RegistrationDate == "" {
		missing = append(missing, "registration_date")
	}
	if in.Status == "" {
		missing = append(missing, "status")
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
// @Summary      Actualizar compañía (parcial)
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  int                       true  "ID de la compañía"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Name == nil && in.RegistrationDate == nil && in.Status == nil {
		return validation(c, "No data provided", nil)
	}
	out, err := h.svc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "Company not found")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar compañía (cascada sobre puntos y arriendos)
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la compañía"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	deleted, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return notFound(c, "Company not found")
	}
	return c.JSON(dto.MessageResponse{Message: "Company deleted successfully"})
}

// Statistics godoc
// @Summary      Estadísticas agregadas de la compañía
// @Tags         companies
// @Produce      json
// @Param        id   path  int  true  "ID de la compañía"
// @Success      200  {object}  dto.CompanyStatisticsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/statistics [get]
func (h *CompanyHandler) Statistics(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	out, err := h.svc.GetStatistics(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "Company not found")
	}
	return c.JSON(out)
}
