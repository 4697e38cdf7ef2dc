// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"go.uber.org/zap"

	"github.com/chacepro/sbom-to-pdf/config"
	"github.com/chacepro/sbom-to-pdf/restapi/modules/sbom"
)

// SetupRoutes configures the upload form and report endpoints.
func SetupRoutes(app *fiber.App, cfg config.Config, logger *zap.Logger) {
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
		AllowMethods: "GET, POST, HEAD, OPTIONS",
	}))

	app.Get("/", sbom.Index())
	app.Post("/process", sbom.GeneratePDF(cfg, logger))

	logger.Info("API routes initialized")
}
