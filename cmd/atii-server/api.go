// Package main provides the snapshot server: the HTTP service holding the
// consolidated site data that sync daemons pull from and push to.
package main

import (
	"log/slog"
	"strconv"

	"github.com/KoboSteruS/atii/pkg/cache"
	"github.com/KoboSteruS/atii/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

type API struct {
	logger    *slog.Logger
	cache     cache.Cache
	authToken string
	validate  *validator.Validate
}

func NewAPI(logger *slog.Logger, c cache.Cache, authToken string) *API {
	return &API{
		logger:    logger,
		cache:     c,
		authToken: authToken,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *API) App() *fiber.App {
	handlers := web.NewHandlers(a.cache, a.validate, a.logger)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("ATII Data API")
	})

	data := app.Group("/api/data", web.BearerAuth(a.authToken))
	data.Get("/", handlers.GetSnapshot)
	data.Put("/", handlers.PutSnapshot)
	data.Get("/:collection", handlers.GetCollection)
	data.Post("/:collection", handlers.PutCollection)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}
