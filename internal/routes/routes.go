package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/aromique/internal/catalog"
	"github.com/example/aromique/internal/config"
	"github.com/example/aromique/internal/handlers"
	"github.com/example/aromique/internal/middleware"
	"github.com/example/aromique/internal/services"
)

// Register wires up all HTTP routes.
func Register(app *fiber.App, db *gorm.DB, engine *catalog.Engine, cfg *config.Config) {
	telegramService := services.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramAdminChat)

	authHandler := handlers.NewAuthHandler(db, cfg)
	productHandler := handlers.NewProductHandler(engine)
	catalogHandler := handlers.NewCatalogHandler(engine)
	inquiryHandler := handlers.NewInquiryHandler(db, engine, telegramService)
	adminHandler := handlers.NewAdminHandler(db, engine, cfg.CatalogBundle)

	api := app.Group("/api")

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// Storefront routes, all anonymous
	products := api.Group("/products")
	productHandler.RegisterProductRoutes(products)

	api.Get("/brands", catalogHandler.ListBrands)
	api.Get("/catalog/meta", catalogHandler.GetMeta)
	api.Get("/catalog/sorts", catalogHandler.ListSortOptions)

	api.Post("/inquiries", inquiryHandler.CreateInquiry)

	// Back-office routes
	admin := api.Group("/admin", middleware.AdminAuthMiddleware(cfg))
	admin.Post("/catalog/reload", adminHandler.ReloadCatalog)
	admin.Get("/inquiries", adminHandler.ListInquiries)
	admin.Put("/inquiries/:id/status", adminHandler.UpdateInquiryStatus)
}
