package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/internal/domain"
	"github.com/jhoicas/Energia-api/internal/domain/entity"
	"github.com/jhoicas/Energia-api/pkg/logger"
)

// Discriminadores de categoría en los cuerpos de error.
const (
	typeValidation = "ValidationError"
	typeNotFound   = "NotFoundError"
	typeIntegrity  = "IntegrityError"
	typeInternal   = "InternalError"
)

// respondError es el único punto donde un error de dominio se convierte en
// status + cuerpo JSON. La validación corta antes de cualquier escritura; los
// errores no reconocidos se registran y salen como 500 con texto genérico
// para no filtrar internals.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrCompanyNotFound):
		return notFound(c, "Company not found")
	case errors.Is(err, domain.ErrPointNotFound):
		return notFound(c, "Energy supply point not found")
	case errors.Is(err, domain.ErrNotFound):
		return notFound(c, "Resource not found")
	case errors.Is(err, domain.ErrInvalidDate):
		return validation(c, "Invalid date format. Use YYYY-MM-DD", nil)
	case errors.Is(err, domain.ErrInvalidStatus):
		return validation(c, "Invalid status", fiber.Map{"valid_statuses": entity.ValidStatuses})
	case errors.Is(err, domain.ErrInvalidPower):
		return validation(c, "Power must be a number greater than zero", nil)
	case errors.Is(err, domain.ErrMissingField):
		return validation(c, "Required field is missing or empty", nil)
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Record with this data already exists", Type: typeIntegrity,
		})
	case errors.Is(err, domain.ErrForeignKey):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Related record not found or cannot be deleted due to existing references", Type: typeIntegrity,
		})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no manejado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: "Internal server error", Type: typeInternal,
	})
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msg, Type: typeNotFound})
}

func validation(c *fiber.Ctx, msg string, payload any) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msg, Type: typeValidation, Payload: payload})
}

func missingFields(c *fiber.Ctx, fields []string) error {
	return validation(c, "Missing required fields", fiber.Map{"missing_fields": fields})
}

func invalidBody(c *fiber.Ctx) error {
	return validation(c, "Invalid request body", nil)
}
