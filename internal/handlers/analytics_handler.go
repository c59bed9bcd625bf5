package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-hclog"

	"oro/internal/middleware"
	"oro/internal/services"
)

// AnalyticsHandler handles affiliate click tracking and the dashboard.
type AnalyticsHandler struct {
	analyticsService *services.AnalyticsService
	authService      *services.AuthService
	logger           hclog.Logger
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(analyticsService *services.AnalyticsService, authService *services.AuthService, logger hclog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		authService:      authService,
		logger:           logger.Named("analytics_handler"),
	}
}

// RegisterRoutes registers the analytics routes with the Fiber app.
func (h *AnalyticsHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/affiliate-click", middleware.OptionalAuth(h.authService, h.logger), h.HandleClick)
	router.Get("/analytics", middleware.AuthRequired(h.authService, h.logger), h.HandleSummary)
}

// ClickRequest represents the request body for an affiliate click.
type ClickRequest struct {
	ProductID string `json:"productId"`
}

// HandleClick records the click and returns the retailer URL.
func (h *AnalyticsHandler) HandleClick(c *fiber.Ctx) error {
	var req ClickRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if req.ProductID == "" {
		return badRequest(c, "Product ID required", nil)
	}

	redirectURL, err := h.analyticsService.RecordClick(req.ProductID, middleware.UserID(c))
	if err != nil {
		return respondError(c, h.logger, "Product not found", err)
	}
	return c.JSON(fiber.Map{
		"success":     true,
		"redirectUrl": redirectURL,
	})
}

// HandleSummary returns the analytics dashboard.
func (h *AnalyticsHandler) HandleSummary(c *fiber.Ctx) error {
	summary, err := h.analyticsService.Summary(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, "Could not load analytics", err)
	}
	return c.JSON(summary)
}
