package main

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/config"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/handlers"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/internal/ws"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/middleware"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/routes"
	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/services"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		logrus.Fatalf("Failed to create upload directory: %v", err)
	}

	hub := ws.NewHub()
	go hub.Run()

	userService := services.NewUserService(db)
	adminService := services.NewAdminService(db, userService)
	notificationService := services.NewNotificationService(db, hub)
	productService := services.NewProductService(db, notificationService)
	messageService := services.NewMessageService(db, hub)

	app := fiber.New(fiber.Config{
		AppName:      "CampusCart Backend",
		ServerHeader: "CampusCart Backend Server/1.0",
		BodyLimit:    10 * 1024 * 1024, // profile photos
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app, cfg)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.SuccessResponse("API is healthy", nil))
	})

	// Uploaded images are public by design.
	app.Static("/uploads", cfg.UploadDir)

	// Everything under /api goes through the identity middleware; public
	// paths are allow-listed inside it.
	app.Use("/api", middleware.Protected(cfg.JWTSecret,
		middleware.AdminResolver(db),
		middleware.UserResolver(db),
	))

	routes.SetupRoutes(app, &routes.Handlers{
		User:         handlers.NewUserHandler(userService, cfg),
		Admin:        handlers.NewAdminHandler(adminService, userService, productService, cfg),
		Product:      handlers.NewProductHandler(productService),
		Message:      handlers.NewMessageHandler(messageService),
		Notification: handlers.NewNotificationHandler(notificationService),
		GoogleAuth:   handlers.NewGoogleAuthHandler(userService, cfg),
		WS:           handlers.NewWSHandler(hub, cfg),
	})

	middleware.SetupErrorHandler(app)

	logrus.Infof("Server starting on host %s in port %s", cfg.Host, cfg.AppPort)

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
