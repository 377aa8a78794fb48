package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/pkg/logger"
)

// CompanyClientService contrato que el handler exige al caso de uso.
// Sin Create: los arriendos nacen del endpoint de rentals.
type CompanyClientService interface {
	List(ctx context.Context) ([]*dto.CompanyClientResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.CompanyClientResponse, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CompanyClientHandler maneja las peticiones HTTP para arriendos registrados.
type CompanyClientHandler struct {
	svc CompanyClientService
	log *logger.Logger
}

// NewCompanyClientHandler construye el handler inyectando el caso de uso.
func NewCompanyClientHandler(svc CompanyClientService, log *logger.Logger) *CompanyClientHandler {
	return &CompanyClientHandler{svc: svc, log: log}
}

// List godoc
// @Summary      Listar arriendos
// @Tags         company-clients
// @Produce      json
// @Success      200  {array}  dto.CompanyClientResponse
// @Router       /api/company-clients [get]
func (h *CompanyClientHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener arriendo por ID
// @Tags         company-clients
// @Produce      json
// @Param        id   path  int  true  "ID del arriendo"
// @Success      200  {object}  dto.CompanyClientResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company-clients/{id} [get]
func (h *CompanyClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	out, err := h.svc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if out == nil {
		return notFound(c, "Company client not found")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar arriendo (libera la potencia arrendada)
// @Tags         company-clients
// @Produce      json
// @Param        id   path  int  true  "ID del arriendo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/company-clients/{id} [delete]
func (h *CompanyClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondInvalidID(c)
	}
	deleted, err := h.svc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !deleted {
		return notFound(c, "Company client not found")
	}
	return c.JSON(dto.MessageResponse{Message: "Company client deleted successfully"})
}
