package listing

import (
	"errors"
	"io"

	"backoffice/core/logger"
	"backoffice/core/tableview"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the list pages.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the listing routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/listing")
	group.Get("/", h.HandleEntities)
	group.Get("/:entity", h.HandleList)
	group.Post("/:entity/export", h.HandleExport)
	group.Get("/:entity/exports", h.HandleExports)
	group.Get("/:entity/exports/download", h.HandleExportDownload)
	group.Delete("/:entity/exports", h.HandleExportDelete)
}

// HandleEntities lists the available record types.
// @Summary List Entities
// @Description Returns the record types that have a list page.
// @Tags listing
// @Produce json
// @Success 200 {object} map[string]interface{} "Entity names"
// @Router /listing [get]
func (h *Handler) HandleEntities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"entities": h.service.Entities()})
}

// HandleList returns the filtered-and-sorted view of one record type.
// @Summary List Records
// @Description Returns the records of an entity, filtered by the search term and ordered by the sort key.
// @Tags listing
// @Produce json
// @Param entity path string true "Entity name (customers, agencies, hotels, appointments, orders, staff, transactions)"
// @Param q query string false "Free-text search term"
// @Param sort query string false "Sort key"
// @Param dir query string false "Sort direction (asc, desc)"
// @Success 200 {object} listing.View "Derived view"
// @Failure 404 {object} map[string]string "Unknown entity"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /listing/{entity} [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	entity := c.Params("entity")

	view, err := h.service.List(c.Context(), entity,
		c.Query("q"), c.Query("sort"), tableview.Direction(c.Query("dir")))
	if err != nil {
		if isUnknownEntity(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("List failed", zap.String("entity", entity), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(view)
}

// HandleExport stores a CSV snapshot of the current view in the export bucket.
// @Summary Export Records
// @Description Renders the filtered-and-sorted view to CSV and stores it in the export bucket.
// @Tags listing
// @Produce json
// @Param entity path string true "Entity name"
// @Param q query string false "Free-text search term"
// @Param sort query string false "Sort key"
// @Param dir query string false "Sort direction (asc, desc)"
// @Success 200 {object} listing.ExportResult "Stored object"
// @Failure 404 {object} map[string]string "Unknown entity"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /listing/{entity}/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	entity := c.Params("entity")

	result, err := h.service.Export(c.Context(), entity,
		c.Query("q"), c.Query("sort"), tableview.Direction(c.Query("dir")))
	if err != nil {
		if isUnknownEntity(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Export failed", zap.String("entity", entity), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleExports lists the stored exports of an entity.
// @Summary List Exports
// @Description Returns the CSV exports stored for an entity in the export bucket.
// @Tags listing
// @Produce json
// @Param entity path string true "Entity name"
// @Success 200 {object} map[string]interface{} "Stored exports"
// @Failure 404 {object} map[string]string "Unknown entity"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /listing/{entity}/exports [get]
func (h *Handler) HandleExports(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	entity := c.Params("entity")

	exports, err := h.service.Exports(c.Context(), entity)
	if err != nil {
		if isUnknownEntity(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Exports listing failed", zap.String("entity", entity), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"entity": entity, "exports": exports})
}

// HandleExportDownload streams a stored export back as CSV.
// @Summary Download Export
// @Description Returns the content of a stored export object.
// @Tags listing
// @Produce text/csv
// @Param entity path string true "Entity name"
// @Param object query string true "Export object name"
// @Success 200 {string} string "CSV content"
// @Failure 400 {object} map[string]string "Bad object name"
// @Failure 404 {object} map[string]string "Unknown entity"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /listing/{entity}/exports/download [get]
func (h *Handler) HandleExportDownload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	entity := c.Params("entity")
	object := c.Query("object")

	rc, err := h.service.OpenExport(c.Context(), entity, object)
	if err != nil {
		return h.exportError(c, l, entity, err)
	}
	defer rc.Close()

	// Exports are small flat files; buffering avoids streaming the body
	// after the handler returned.
	data, err := io.ReadAll(rc)
	if err != nil {
		l.Error("Export read failed", zap.String("object", object), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	return c.Send(data)
}

// HandleExportDelete removes a stored export.
// @Summary Delete Export
// @Description Removes a stored export object from the export bucket.
// @Tags listing
// @Produce json
// @Param entity path string true "Entity name"
// @Param object query string true "Export object name"
// @Success 200 {object} map[string]string "Delete status"
// @Failure 400 {object} map[string]string "Bad object name"
// @Failure 404 {object} map[string]string "Unknown entity"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /listing/{entity}/exports [delete]
func (h *Handler) HandleExportDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	entity := c.Params("entity")
	object := c.Query("object")

	if err := h.service.DeleteExport(c.Context(), entity, object); err != nil {
		return h.exportError(c, l, entity, err)
	}

	return c.JSON(fiber.Map{"status": "deleted", "object": object})
}

func (h *Handler) exportError(c *fiber.Ctx, l *zap.Logger, entity string, err error) error {
	switch {
	case isUnknownEntity(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrBadExportObject):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		l.Error("Export operation failed", zap.String("entity", entity), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

func isUnknownEntity(err error) bool {
	return errors.Is(err, ErrUnknownEntity)
}
