package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hashicorp/go-hclog"

	"oro/internal/middleware"
	"oro/internal/search"
	"oro/internal/services"
)

// ProductHandler handles HTTP requests for catalog search and matching.
type ProductHandler struct {
	productService *services.ProductService
	authService    *services.AuthService
	searchLimit    int
	validate       *validator.Validate
	logger         hclog.Logger
}

// NewProductHandler creates a new ProductHandler. searchLimit caps search
// results when the request does not ask for a limit; 0 means unlimited.
func NewProductHandler(productService *services.ProductService, authService *services.AuthService, searchLimit int, logger hclog.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authService:    authService,
		searchLimit:    searchLimit,
		validate:       validator.New(),
		logger:         logger.Named("product_handler"),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleSearch)
	productRoutes.Post("/match", middleware.OptionalAuth(h.authService, h.logger), h.HandleMatch)
	productRoutes.Get("/:id", h.HandleGetProduct)
}

// HandleSearch searches the catalog. Unparseable numeric parameters are
// ignored.
func (h *ProductHandler) HandleSearch(c *fiber.Ctx) error {
	q := search.TextQuery{
		Q:        c.Query("q"),
		MinPrice: search.ParseBound(c.Query("min")),
		MaxPrice: search.ParseBound(c.Query("max")),
		Ethics:   search.ParseTags(c.Query("ethics")),
		Limit:    h.searchLimit,
	}
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		q.Limit = n
	}
	return c.JSON(h.productService.Search(q))
}

// HandleGetProduct returns one product by id.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	product, err := h.productService.GetProductByID(c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, "Product not found", err)
	}
	return c.JSON(product)
}

// MatchRequest represents the request body for piece matching.
type MatchRequest struct {
	Piece       *search.Piece `json:"piece"`
	MoodboardID string        `json:"moodboardId"`
}

// HandleMatch ranks catalog products against a wardrobe piece.
func (h *ProductHandler) HandleMatch(c *fiber.Ctx) error {
	var req MatchRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	if req.Piece == nil {
		return badRequest(c, "Piece data required", nil)
	}
	if err := h.validate.Struct(req.Piece); err != nil {
		return validationFailed(c, err)
	}

	matches, err := h.productService.Match(*req.Piece, req.MoodboardID)
	if err != nil {
		return respondError(c, h.logger, "Could not match piece", err)
	}
	return c.JSON(matches)
}
