package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"shopdesk/internal/config"
	"shopdesk/internal/http/handlers"
	applog "shopdesk/internal/log"
	"shopdesk/internal/store"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			applog.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	// The whole "database" lives here; gone when the process exits.
	stores := store.NewStores()
	if err := store.Seed(stores); err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal error",
			})
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded, retry soon"})
		},
	}))

	// ---------- Routes ----------
	deps := handlers.NewDeps(stores, cfg)

	app.Get("/", deps.DashboardHandler.Page)

	api := app.Group("/api/v1")
	api.Get("/dashboard", deps.DashboardHandler.Snapshot)

	api.Get("/products", deps.ProductHandler.List)
	api.Get("/products/:id", deps.ProductHandler.Get)
	api.Post("/products", deps.ProductHandler.Create)
	api.Patch("/products/:id", deps.ProductHandler.Update)
	api.Delete("/products/:id", deps.ProductHandler.Delete)

	api.Get("/clients", deps.ClientHandler.List)
	api.Get("/clients/:id", deps.ClientHandler.Get)
	api.Post("/clients", deps.ClientHandler.Create)
	api.Patch("/clients/:id", deps.ClientHandler.Update)
	api.Delete("/clients/:id", deps.ClientHandler.Delete)

	api.Get("/sales", deps.SaleHandler.List)
	api.Get("/sales/:id", deps.SaleHandler.Get)
	api.Post("/sales", deps.SaleHandler.Create)
	api.Patch("/sales/:id", deps.SaleHandler.Update)
	api.Delete("/sales/:id", deps.SaleHandler.Delete)

	api.Get("/suppliers", deps.SupplierHandler.List)
	api.Get("/suppliers/:id", deps.SupplierHandler.Get)
	api.Post("/suppliers", deps.SupplierHandler.Create)
	api.Patch("/suppliers/:id", deps.SupplierHandler.Update)
	api.Delete("/suppliers/:id", deps.SupplierHandler.Delete)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
