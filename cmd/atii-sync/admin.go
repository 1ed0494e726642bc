package main

import (
	"log/slog"
	"strconv"

	"github.com/KoboSteruS/atii/pkg/store"
	"github.com/KoboSteruS/atii/pkg/web"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// Admin serves the mutation API of the embedded store. Every change made
// through it is cached, broadcast to peers and pushed to the remote service.
type Admin struct {
	store    *store.Store
	logger   *slog.Logger
	validate *validator.Validate
}

func NewAdmin(st *store.Store, log *slog.Logger) *Admin {
	return &Admin{
		store:    st,
		logger:   log,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (a *Admin) App() *fiber.App {
	handlers := web.NewAdminHandlers(a.store, a.validate, a.logger)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("ATII Admin API")
	})

	admin := app.Group("/admin")
	admin.Get("/websites", handlers.GetWebsites)
	admin.Post("/websites", handlers.CreateWebsite)
	admin.Patch("/websites/:id", handlers.UpdateWebsite)
	admin.Delete("/websites/:id", handlers.DeleteWebsite)
	admin.Post("/websites/:id/duplicate", handlers.DuplicateWebsite)

	admin.Get("/templates", handlers.GetTemplates)
	admin.Post("/templates", handlers.CreateTemplate)
	admin.Patch("/templates/:id", handlers.UpdateTemplate)
	admin.Delete("/templates/:id", handlers.DeleteTemplate)
	admin.Post("/templates/:id/duplicate", handlers.DuplicateTemplate)
	admin.Post("/templates/:id/workflow", handlers.AddWorkflowStep)
	admin.Get("/templates/:id/schema", handlers.GetWorkflowSchema)
	admin.Put("/templates/:id/schema", handlers.SaveWorkflowSchema)

	admin.Get("/pages", handlers.GetPages)
	admin.Patch("/pages/:id", handlers.UpdatePage)

	admin.Get("/settings", handlers.GetSettings)
	admin.Patch("/settings", handlers.UpdateSettings)

	return app
}

func (a *Admin) Start(port int) {
	if err := a.App().Listen(":" + strconv.Itoa(port)); err != nil {
		a.logger.Error("Admin API stopped", "error", err)
	}
}
