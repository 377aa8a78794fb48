package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

var errInvalidID = errors.New("id inválido")

// parseID interpreta el parámetro de ruta :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// respondInvalidID cuerpo 400 para ids no numéricos: entrada malformada,
// no un recurso ausente.
func respondInvalidID(c *fiber.Ctx) error {
	return validation(c, "Invalid id: must be a positive integer", nil)
}
