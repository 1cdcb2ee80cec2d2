package health

import (
	"backoffice/core/logger"
	"backoffice/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleHealthCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/storage", h.HandleStorageCheck)
}

// HandleHealthCheck runs all health checks.
// @Summary Run All Health Checks
// @Description Checks the database schema and the export bucket in one pass.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /health [get]
func (h *Handler) HandleHealthCheck(c *fiber.Ctx) error {
	ctx := c.Context()
	report := make(map[string]interface{})

	if dbReport, err := h.service.CheckDatabase(ctx); err != nil {
		report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else if dbReport.OK() {
		report["database"] = map[string]interface{}{"status": "ok"}
	} else {
		report["database"] = map[string]interface{}{"status": "degraded", "report": dbReport}
	}

	if exists, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else if exists {
		report["storage"] = map[string]interface{}{"status": "ok"}
	} else {
		report["storage"] = map[string]interface{}{"status": "degraded", "missing_bucket": true}
	}

	return c.JSON(report)
}

// HandleDatabaseCheck checks the database schema.
// @Summary Check Database Schema
// @Description Verifies that every table the dashboard reads exists with the columns its queries depend on.
// @Tags health
// @Produce json
// @Success 200 {object} health.DatabaseReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase(c.Context())
	if err != nil {
		l.Error("Database check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK() {
		l.Warn("Schema check found gaps",
			zap.Strings("missing_tables", report.MissingTables),
			zap.Int("tables_missing_columns", len(report.MissingColumns)))
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally creates the export bucket.
// @Summary Check Export Bucket
// @Description Checks that the export bucket exists. Optionally creates it.
// @Tags health
// @Produce json
// @Param fix query boolean false "Create the bucket when missing"
// @Success 200 {object} map[string]interface{} "Bucket Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	exists, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !exists {
		l.Warn("Export bucket missing")

		if fix {
			if err := h.service.FixStorage(c.Context()); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to create bucket",
					"details": err.Error(),
				})
			}
			return c.JSON(fiber.Map{"status": "fixed"})
		}
	}

	return c.JSON(fiber.Map{
		"status": "checked",
		"exists": exists,
	})
}
