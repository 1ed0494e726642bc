// Package web provides the HTTP surface of the snapshot service: the
// consolidated snapshot endpoint the reconciler polls and the per-collection
// replacement endpoints the store pushes to.
package web

import (
	"encoding/json"
	"log/slog"

	"github.com/KoboSteruS/atii/pkg/cache"
	"github.com/KoboSteruS/atii/pkg/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	cache     cache.Cache
	validator *validator.Validate
	logger    *slog.Logger
}

func NewHandlers(c cache.Cache, validator *validator.Validate, logger *slog.Logger) *Handlers {
	return &Handlers{
		cache:     c,
		validator: validator,
		logger:    logger,
	}
}

// GetSnapshot returns the consolidated state of all collections. Collections
// never written are served as their empty container so clients always see a
// complete document.
func (h *Handlers) GetSnapshot(c fiber.Ctx) error {
	var snapshot models.Snapshot

	for _, collection := range models.Collections() {
		raw, ok := h.cache.Read(c.Context(), collection.CacheKey())
		if !ok {
			raw = json.RawMessage(collection.EmptyValue())
		}

		snapshot.Set(collection, raw)
	}

	return c.JSON(snapshot)
}

// GetCollection returns the stored value of a single collection, or its empty
// container when nothing has been written yet.
func (h *Handlers) GetCollection(c fiber.Ctx) error {
	collection, ok := models.CollectionByName(c.Params("collection"))
	if !ok {
		return notFound(c, "Unknown collection")
	}

	raw, found := h.cache.Read(c.Context(), collection.CacheKey())
	if !found {
		raw = json.RawMessage(collection.EmptyValue())
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return c.Send(raw)
}

// PutCollection replaces the stored value of one collection wholesale.
// Payloads for the typed collections are validated before being accepted.
func (h *Handlers) PutCollection(c fiber.Ctx) error {
	collection, ok := models.CollectionByName(c.Params("collection"))
	if !ok {
		return notFound(c, "Unknown collection")
	}

	raw := json.RawMessage(c.Body())
	if !json.Valid(raw) {
		return badRequest(c, "Invalid JSON format")
	}

	if err := h.validatePayload(collection, raw); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.cache.Write(c.Context(), collection.CacheKey(), raw); err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{"status": "ok", "collection": collection})
}

// PutSnapshot replaces every collection present in the posted snapshot.
// Absent collections are left untouched.
func (h *Handlers) PutSnapshot(c fiber.Ctx) error {
	var snapshot models.Snapshot
	if err := c.Bind().JSON(&snapshot); err != nil {
		return badRequest(c, "Invalid JSON format")
	}

	// Validate every present collection before writing any, so a bad one
	// cannot leave a half-applied snapshot behind a 400.
	for _, collection := range models.Collections() {
		raw := snapshot.Get(collection)
		if raw == nil {
			continue
		}

		if err := h.validatePayload(collection, raw); err != nil {
			return badRequest(c, err.Error())
		}
	}

	for _, collection := range models.Collections() {
		raw := snapshot.Get(collection)
		if raw == nil {
			continue
		}

		if err := h.cache.Write(c.Context(), collection.CacheKey(), raw); err != nil {
			return internalError(c, err)
		}
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handlers) validatePayload(collection models.Collection, raw json.RawMessage) error {
	switch collection {
	case models.CollectionWebsites:
		var websites []models.Website
		if err := json.Unmarshal(raw, &websites); err != nil {
			return err
		}

		for i := range websites {
			if err := h.validator.Struct(websites[i]); err != nil {
				return err
			}
		}
	case models.CollectionTemplates:
		var templates []models.Template
		if err := json.Unmarshal(raw, &templates); err != nil {
			return err
		}

		for i := range templates {
			if err := h.validator.Struct(templates[i]); err != nil {
				return err
			}
		}
	case models.CollectionSettings:
		var settings models.Settings
		if err := json.Unmarshal(raw, &settings); err != nil {
			return err
		}

		return h.validator.Struct(settings)
	case models.CollectionPages:
		var pages []models.PageContent

		return json.Unmarshal(raw, &pages)
	case models.CollectionWorkflowSchemas:
		var schemas map[string][]models.SchemaNode

		return json.Unmarshal(raw, &schemas)
	}

	return nil
}

// BearerAuth guards a route group with a static bearer token. An empty token
// disables the check.
func BearerAuth(token string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if token == "" {
			return c.Next()
		}

		if c.Get(fiber.HeaderAuthorization) != "Bearer "+token {
			return unauthorized(c, "Invalid or missing bearer token")
		}

		return c.Next()
	}
}
