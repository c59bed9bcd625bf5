package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-hclog"

	"oro/internal/middleware"
	"oro/internal/services"
)

// CapsuleHandler handles HTTP requests for capsules and the capsule generator.
type CapsuleHandler struct {
	capsuleService *services.CapsuleService
	authService    *services.AuthService
	validate       *validator.Validate
	logger         hclog.Logger
}

// NewCapsuleHandler creates a new CapsuleHandler.
func NewCapsuleHandler(capsuleService *services.CapsuleService, authService *services.AuthService, logger hclog.Logger) *CapsuleHandler {
	return &CapsuleHandler{
		capsuleService: capsuleService,
		authService:    authService,
		validate:       validator.New(),
		logger:         logger.Named("capsule_handler"),
	}
}

// RegisterRoutes registers the capsule routes with the Fiber app.
func (h *CapsuleHandler) RegisterRoutes(router fiber.Router) {
	optionalAuth := middleware.OptionalAuth(h.authService, h.logger)
	capsules := router.Group("/capsules")
	capsules.Post("/", optionalAuth, h.HandleCreate)
	capsules.Get("/", optionalAuth, h.HandleList)
	capsules.Post("/:id/add-product", h.HandleAddProduct)
	router.Post("/generate-capsule", h.HandleGenerate)
}

// CreateCapsuleRequest represents the request body for a new capsule.
type CreateCapsuleRequest struct {
	UserID     string   `json:"userId"`
	Title      string   `json:"title" validate:"max=200"`
	ProductIDs []string `json:"productIds" validate:"max=100,dive,required"`
}

// HandleCreate stores a new capsule.
func (h *CapsuleHandler) HandleCreate(c *fiber.Ctx) error {
	var req CreateCapsuleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	capsule, err := h.capsuleService.Create(ownerFor(c, req.UserID), req.Title, req.ProductIDs)
	if err != nil {
		return respondError(c, h.logger, "Could not create capsule", err)
	}
	return c.Status(fiber.StatusCreated).JSON(capsule)
}

// HandleList returns the caller's capsules.
func (h *CapsuleHandler) HandleList(c *fiber.Ctx) error {
	capsules, err := h.capsuleService.List(ownerFor(c, c.Query("userId")))
	if err != nil {
		return respondError(c, h.logger, "Could not list capsules", err)
	}
	return c.JSON(capsules)
}

// AddProductRequest represents the request body for adding a product.
type AddProductRequest struct {
	ProductID string `json:"productId"`
}

// HandleAddProduct appends a product to a capsule.
func (h *CapsuleHandler) HandleAddProduct(c *fiber.Ctx) error {
	var req AddProductRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	capsule, err := h.capsuleService.AddProduct(c.Params("id"), req.ProductID)
	if err != nil {
		return respondError(c, h.logger, "Could not add product", err)
	}
	return c.JSON(capsule)
}

// HandleGenerate proposes a capsule wardrobe.
func (h *CapsuleHandler) HandleGenerate(c *fiber.Ctx) error {
	var req services.GenerateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body", err)
		}
	}
	if err := h.validate.Struct(req); err != nil {
		return validationFailed(c, err)
	}

	capsule, err := h.capsuleService.Generate(req)
	if err != nil {
		return respondError(c, h.logger, "Could not generate capsule", err)
	}
	return c.JSON(capsule)
}
