package services

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"oro/internal/catalog"
	"oro/internal/models"
	"oro/internal/repositories"
	"oro/internal/search"
)

// ProductService exposes catalog search and piece matching.
type ProductService struct {
	catalog    catalog.Provider
	engine     *search.Engine
	moodboards repositories.MoodboardRepository
	logger     hclog.Logger
}

// NewProductService creates a new ProductService.
func NewProductService(provider catalog.Provider, engine *search.Engine, moodboards repositories.MoodboardRepository, logger hclog.Logger) *ProductService {
	return &ProductService{
		catalog:    provider,
		engine:     engine,
		moodboards: moodboards,
		logger:     logger.Named("products"),
	}
}

// Search runs a text query against the current catalog snapshot.
func (s *ProductService) Search(q search.TextQuery) []models.Product {
	results := s.engine.Search(s.catalog.Snapshot(), q)
	s.logger.Debug("search", "q", q.Q, "ethics", q.Ethics, "results", len(results))
	return results
}

// GetProductByID retrieves a single catalog product.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.catalog.Lookup(id)
}

// Match ranks catalog products against piece. When moodboardID is set, only
// products inside that board's price range and ethics preferences compete.
func (s *ProductService) Match(piece search.Piece, moodboardID string) ([]models.ScoredProduct, error) {
	candidates := s.catalog.Snapshot()

	if moodboardID != "" {
		board, err := s.moodboards.GetByID(moodboardID)
		if err != nil {
			return nil, fmt.Errorf("failed to load moodboard for matching: %w", err)
		}
		min, max := board.PriceRange.Min, board.PriceRange.Max
		candidates = search.FilterByPrice(candidates, &min, &max)
		candidates = search.FilterByEthics(candidates, board.Ethics)
	}

	matches := s.engine.Match(candidates, piece)
	s.logger.Debug("match", "moodboard_id", moodboardID, "candidates", len(candidates), "results", len(matches))
	return matches, nil
}
