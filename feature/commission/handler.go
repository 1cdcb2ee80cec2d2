package commission

import (
	"backoffice/core/logger"
	"backoffice/core/tableview"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the commission dashboard.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the commission routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/commission")
	group.Get("/summary", h.HandleSummary)
	group.Get("/agencies", h.HandleAgencies)
	group.Post("/refresh", h.HandleRefresh)
}

// HandleSummary returns the dashboard summary statistics.
// @Summary Commission Summary
// @Description Returns total agencies, the top agencies by linked customers, and the total outstanding commission.
// @Tags commission
// @Produce json
// @Success 200 {object} commission.Summary "Dashboard summary"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /commission/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	summary, err := h.service.Summary(c.Context())
	if err != nil {
		l.Error("Summary failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(summary)
}

// HandleAgencies returns the per-agency balance table.
// @Summary Agency Balances
// @Description Returns the per-agency owed/paid/outstanding breakdown, filtered by the search term and ordered by the sort key.
// @Tags commission
// @Produce json
// @Param q query string false "Free-text search term"
// @Param sort query string false "Sort key"
// @Param dir query string false "Sort direction (asc, desc)"
// @Success 200 {object} commission.AgencyView "Balance table"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /commission/agencies [get]
func (h *Handler) HandleAgencies(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	view, err := h.service.Agencies(c.Context(),
		c.Query("q"), c.Query("sort"), tableview.Direction(c.Query("dir")))
	if err != nil {
		l.Error("Agencies failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(view)
}

// HandleRefresh drops the cached snapshot.
// @Summary Refresh Snapshot
// @Description Invalidates the cached reconciliation snapshot so the next request rebuilds it from the database.
// @Tags commission
// @Produce json
// @Success 200 {object} map[string]string "Refresh status"
// @Router /commission/refresh [post]
func (h *Handler) HandleRefresh(c *fiber.Ctx) error {
	h.service.Refresh()
	return c.JSON(fiber.Map{"status": "refreshed"})
}
