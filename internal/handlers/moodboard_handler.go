package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-hclog"

	"oro/internal/middleware"
	"oro/internal/services"
)

// MoodboardHandler handles HTTP requests for moodboards.
type MoodboardHandler struct {
	moodboardService *services.MoodboardService
	authService      *services.AuthService
	validate         *validator.Validate
	logger           hclog.Logger
}

// NewMoodboardHandler creates a new MoodboardHandler.
func NewMoodboardHandler(moodboardService *services.MoodboardService, authService *services.AuthService, logger hclog.Logger) *MoodboardHandler {
	return &MoodboardHandler{
		moodboardService: moodboardService,
		authService:      authService,
		validate:         validator.New(),
		logger:           logger.Named("moodboard_handler"),
	}
}

// RegisterRoutes registers the moodboard routes with the Fiber app.
func (h *MoodboardHandler) RegisterRoutes(router fiber.Router) {
	optionalAuth := middleware.OptionalAuth(h.authService, h.logger)
	boards := router.Group("/moodboards")
	boards.Post("/", optionalAuth, h.HandleCreate)
	boards.Get("/", optionalAuth, h.HandleList)
	boards.Get("/:id", h.HandleGet)
}

// HandleCreate stores a new moodboard for the caller.
func (h *MoodboardHandler) HandleCreate(c *fiber.Ctx) error {
	var in services.MoodboardInput
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := h.validate.Struct(in); err != nil {
		return validationFailed(c, err)
	}

	board, err := h.moodboardService.Create(middleware.UserID(c), in)
	if err != nil {
		return respondError(c, h.logger, "Could not create moodboard", err)
	}
	return c.Status(fiber.StatusCreated).JSON(board)
}

// HandleGet returns a full moodboard.
func (h *MoodboardHandler) HandleGet(c *fiber.Ctx) error {
	board, err := h.moodboardService.Get(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, "Moodboard not found", err)
	}
	return c.JSON(board)
}

// HandleList returns summaries of the caller's moodboards.
func (h *MoodboardHandler) HandleList(c *fiber.Ctx) error {
	boards, err := h.moodboardService.ListForUser(ownerFor(c, c.Query("userId")))
	if err != nil {
		return respondError(c, h.logger, "Could not list moodboards", err)
	}
	return c.JSON(boards)
}
