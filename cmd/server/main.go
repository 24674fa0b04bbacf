package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/joho/godotenv"

	"github.com/jamasa1985-ui/ata-kan-sub000/internal/config"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/database"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/handlers"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/middleware"
	"github.com/jamasa1985-ui/ata-kan-sub000/internal/types"

	_ "github.com/jamasa1985-ui/ata-kan-sub000/docs/api" // Swagger docs
)

// @title Ata-Kan API
// @version 1.0.0
// @description Lottery and pre-order application tracking service
//
// @host localhost:3000
// @BasePath /api
// @schemes http https

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations and install reference data
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.SeedOptions(db); err != nil {
		log.Fatalf("Failed to seed option tables: %v", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	// Prometheus metrics
	prometheus := fiberprometheus.New("atakan")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")

	// Version middleware
	api.Use(middleware.VersionMiddleware())

	// Create handlers
	productHandler := &handlers.ProductHandler{DB: db}
	shopHandler := &handlers.ShopHandler{DB: db}
	memberHandler := &handlers.MemberHandler{DB: db}
	entryHandler := &handlers.EntryHandler{DB: db}
	reportHandler := &handlers.ReportHandler{DB: db}
	optionHandler := &handlers.OptionHandler{DB: db}
	healthHandler := &handlers.HealthHandler{Config: cfg, DB: db}

	// Master data routes
	api.Get("/products", productHandler.ListProducts)
	api.Post("/products", productHandler.CreateProduct)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Put("/products/:id", productHandler.UpdateProduct)
	api.Delete("/products/:id", productHandler.DeleteProduct)

	api.Get("/shops", shopHandler.ListShops)
	api.Post("/shops", shopHandler.CreateShop)
	api.Get("/shops/:id", shopHandler.GetShop)
	api.Put("/shops/:id", shopHandler.UpdateShop)
	api.Delete("/shops/:id", shopHandler.DeleteShop)

	api.Get("/members", memberHandler.ListMembers)
	api.Post("/members", memberHandler.CreateMember)
	api.Get("/members/:id", memberHandler.GetMember)
	api.Put("/members/:id", memberHandler.UpdateMember)
	api.Delete("/members/:id", memberHandler.DeleteMember)

	// Entry routes
	api.Get("/entries", entryHandler.ListEntries)
	api.Post("/entries", entryHandler.CreateEntry)
	api.Get("/entries/:id", entryHandler.GetEntry)
	api.Put("/entries/:id", entryHandler.UpdateEntry)
	api.Delete("/entries/:id", entryHandler.DeleteEntry)
	api.Put("/entries/:id/members", entryHandler.UpdateEntryMembers)
	api.Get("/entries/:id/items", entryHandler.ListPurchaseItems)
	api.Put("/entries/:id/members/:memberId/items", entryHandler.ReplacePurchaseItems)
	api.Get("/entries/:id/summary", entryHandler.GetEntrySummary)

	// Read-only views
	api.Get("/alerts", reportHandler.GetAlerts)
	api.Get("/schedule", reportHandler.GetSchedule)
	api.Get("/options/:kind", optionHandler.ListOptions)
	api.Get("/health", healthHandler.GetHealth)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":    fiber.StatusNotFound,
			"message":   "[404] Resource Not Found",
			"ok":        false,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"url":       c.OriginalURL(),
		})
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Check for typed errors raised below the handlers
	if e, ok := err.(*types.CustomError); ok {
		code = e.Code
		message = e.Message
		errorType = e.Type
	}

	return c.Status(code).JSON(fiber.Map{
		"status":    code,
		"message":   message,
		"ok":        false,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"url":       c.OriginalURL(),
		"type":      errorType,
	})
}
