package web

import (
	"log/slog"

	"github.com/KoboSteruS/atii/pkg/models"
	"github.com/KoboSteruS/atii/pkg/store"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// AdminHandlers expose the store's mutation API over HTTP for the admin
// panel. Every mutation goes through the store, so cache writes, peer
// broadcasts and remote pushes happen exactly as for any local change.
type AdminHandlers struct {
	store     *store.Store
	validator *validator.Validate
	logger    *slog.Logger
}

func NewAdminHandlers(st *store.Store, validator *validator.Validate, logger *slog.Logger) *AdminHandlers {
	return &AdminHandlers{
		store:     st,
		validator: validator,
		logger:    logger,
	}
}

func (h *AdminHandlers) GetWebsites(c fiber.Ctx) error {
	return c.JSON(h.store.Websites())
}

func (h *AdminHandlers) CreateWebsite(c fiber.Ctx) error {
	var website models.Website
	if err := c.Bind().JSON(&website); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(website); err != nil {
		return badRequest(c, err.Error())
	}

	created := h.store.AddWebsite(c.Context(), website)

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AdminHandlers) UpdateWebsite(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Website ID is required")
	}

	var patch store.WebsitePatch
	if err := c.Bind().JSON(&patch); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	h.store.UpdateWebsite(c.Context(), id, patch)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandlers) DeleteWebsite(c fiber.Ctx) error {
	h.store.DeleteWebsite(c.Context(), c.Params("id"))

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandlers) DuplicateWebsite(c fiber.Ctx) error {
	h.store.DuplicateWebsite(c.Context(), c.Params("id"))

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandlers) GetTemplates(c fiber.Ctx) error {
	return c.JSON(h.store.Templates())
}

func (h *AdminHandlers) CreateTemplate(c fiber.Ctx) error {
	var template models.Template
	if err := c.Bind().JSON(&template); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(template); err != nil {
		return badRequest(c, err.Error())
	}

	created := h.store.AddTemplate(c.Context(), template)

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AdminHandlers) UpdateTemplate(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Template ID is required")
	}

	var patch store.TemplatePatch
	if err := c.Bind().JSON(&patch); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	h.store.UpdateTemplate(c.Context(), id, patch)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandlers) DeleteTemplate(c fiber.Ctx) error {
	h.store.DeleteTemplate(c.Context(), c.Params("id"))

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandlers) DuplicateTemplate(c fiber.Ctx) error {
	h.store.DuplicateTemplate(c.Context(), c.Params("id"))

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandlers) AddWorkflowStep(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Template ID is required")
	}

	var step models.WorkflowStep
	if err := c.Bind().JSON(&step); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validator.Struct(step); err != nil {
		return badRequest(c, err.Error())
	}

	created := h.store.AddWorkflowStep(c.Context(), id, step)
	if created.ID == "" {
		return notFound(c, "Template not found")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *AdminHandlers) GetWorkflowSchema(c fiber.Ctx) error {
	return c.JSON(h.store.WorkflowSchema(c.Params("id")))
}

func (h *AdminHandlers) SaveWorkflowSchema(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Template ID is required")
	}

	var nodes []models.SchemaNode
	if err := c.Bind().JSON(&nodes); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	h.store.SaveWorkflowSchema(c.Context(), id, nodes)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandlers) GetPages(c fiber.Ctx) error {
	return c.JSON(h.store.Pages())
}

func (h *AdminHandlers) UpdatePage(c fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return badRequest(c, "Page ID is required")
	}

	var patch store.PagePatch
	if err := c.Bind().JSON(&patch); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	h.store.UpdatePage(c.Context(), id, patch)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AdminHandlers) GetSettings(c fiber.Ctx) error {
	return c.JSON(h.store.Settings())
}

func (h *AdminHandlers) UpdateSettings(c fiber.Ctx) error {
	var patch store.SettingsPatch
	if err := c.Bind().JSON(&patch); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	h.store.UpdateSettings(c.Context(), patch)

	return c.JSON(h.store.Settings())
}
