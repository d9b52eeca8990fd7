package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/config"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
)

// SetupMiddleware configures all application middleware
func SetupMiddleware(app *fiber.App, cfg *config.Config) {
	// Request ID middleware - adds unique ID to each request
	app.Use(requestid.New())

	// Logger middleware - logs all requests
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${method} ${path} - ${ip} - ${latency}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))

	// Recover middleware - recovers from panics
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Security middleware
	app.Use(helmet.New(helmet.Config{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
	}))

	// CORS is restricted to the named frontend origins; credentials stay
	// enabled so the Authorization header survives preflight.
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORSAllowOrigins, ","),
		AllowMethods:     strings.Join(cfg.CORSAllowMethods, ","),
		AllowHeaders:     strings.Join(cfg.CORSAllowHeaders, ","),
		AllowCredentials: true,
		ExposeHeaders:    "Authorization,X-Request-ID",
		MaxAge:           3600,
	}))
}

// SetupErrorHandler configures the trailing 404 handler.
func SetupErrorHandler(app *fiber.App) {
	app.Use(func(c *fiber.Ctx) error {
		response := models.ErrorResponse("Not Found", "The requested resource was not found")
		return c.Status(fiber.StatusNotFound).JSON(response)
	})
}
