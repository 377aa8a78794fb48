package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Energia-api/internal/application/dto"
	"github.com/jhoicas/Energia-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanySvc CompanyService
	PointSvc   SupplyPointService
	RentalSvc  RentalService
	ClientSvc  CompanyClientService
	Log        *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{
			Status:  "healthy",
			Message: "Energy Supply API is running",
		})
	})

	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanySvc, deps.Log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", companyHandler.Update)
	companies.Delete("/:id", companyHandler.Delete)
	companies.Get("/:id/statistics", companyHandler.Statistics)

	points := api.Group("/energy-supply-points")
	pointHandler := NewSupplyPointHandler(deps.PointSvc, deps.RentalSvc, deps.Log)
	points.Get("/", pointHandler.List)
	points.Post("/", pointHandler.Create)
	// /search antes de /:id para que no lo capture el parámetro
	points.Get("/search", pointHandler.Search)
	points.Get("/:id", pointHandler.GetByID)
	points.Put("/:id", pointHandler.Update)
	points.Delete("/:id", pointHandler.Delete)
	points.Post("/:id/rentals", pointHandler.Rent)

	clients := api.Group("/company-clients")
	clientHandler := NewCompanyClientHandler(deps.ClientSvc, deps.Log)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Delete("/:id", clientHandler.Delete)
}
