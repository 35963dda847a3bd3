package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/example/aromique/internal/catalog"
	"github.com/example/aromique/internal/config"
	"github.com/example/aromique/internal/database"
	"github.com/example/aromique/internal/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	if err := database.SeedAdmin(db, cfg.AdminPhone, cfg.AdminPassword); err != nil {
		log.Fatalf("admin seed failed: %v", err)
	}

	repo, err := catalog.LoadBundle(cfg.CatalogBundle)
	if err != nil {
		log.Fatalf("failed to load catalog bundle: %v", err)
	}
	log.Printf("catalog loaded: %d products, %d brands", repo.Len(), len(repo.Brands()))

	engine := catalog.NewEngine(repo)

	app := fiber.New(fiber.Config{
		AppName: "Aromique Catalog",
	})

	app.Use(recover.New())
	app.Use(logger.New())

	routes.Register(app, db, engine, cfg)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		log.Fatalf("fiber.Listen error: %v", err)
	}
}
