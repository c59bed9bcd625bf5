package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"oro/internal/cache"
	"oro/internal/catalog"
	"oro/internal/models"
	"oro/internal/repositories"
	"oro/pkg/rabbitmq"
)

const defaultCapsuleTitle = "My Capsule"

// Capsule generator heuristics.
const (
	defaultPieces   = 12
	maxKeywords     = 10
	defaultMinPrice = 20.0
	defaultMaxPrice = 200.0
)

var (
	basePalette   = []string{"black", "white", "navy", "beige", "olive"}
	capsuleStyles = []string{"casual", "minimal", "elegant", "boho", "sporty"}
	nonAlnum      = regexp.MustCompile(`[^a-z0-9]+`)
)

// GenerateRequest parameterizes the capsule generator.
type GenerateRequest struct {
	MoodboardID string             `json:"moodboardId"`
	Description string             `json:"description" validate:"max=2000"`
	PriceRange  *models.PriceRange `json:"priceRange"`
	Ethics      []string           `json:"ethics"`
	NumPieces   int                `json:"numPieces" validate:"gte=0,lte=50"`
}

// CapsuleService handles capsule collections and the capsule generator.
type CapsuleService struct {
	repo       repositories.CapsuleRepository
	catalog    catalog.Provider
	moodboards repositories.MoodboardRepository
	publisher  EventPublisher
	summary    cache.SummaryCache
	logger     hclog.Logger
	random     func() float64
	now        func() time.Time
}

// NewCapsuleService creates a new CapsuleService. publisher may be nil.
func NewCapsuleService(
	repo repositories.CapsuleRepository,
	provider catalog.Provider,
	moodboards repositories.MoodboardRepository,
	publisher EventPublisher,
	logger hclog.Logger,
) *CapsuleService {
	return &CapsuleService{
		repo:       repo,
		catalog:    provider,
		moodboards: moodboards,
		publisher:  publisher,
		logger:     logger.Named("capsules"),
		random:     rand.Float64,
		now:        time.Now,
	}
}

// WithRandom replaces the generator's source of uniform [0,1) values.
func (s *CapsuleService) WithRandom(random func() float64) *CapsuleService {
	s.random = random
	return s
}

// WithClock replaces the clock used to stamp generated capsules.
func (s *CapsuleService) WithClock(now func() time.Time) *CapsuleService {
	s.now = now
	return s
}

// WithSummaryCache drops the cached analytics summary whenever a capsule is
// created.
func (s *CapsuleService) WithSummaryCache(c cache.SummaryCache) *CapsuleService {
	s.summary = c
	return s
}

// Create stores a capsule. Every product id must exist in the catalog.
func (s *CapsuleService) Create(userID, title string, productIDs []string) (*models.Capsule, error) {
	if userID == "" {
		userID = models.AnonymousUserID
	}
	if title == "" {
		title = defaultCapsuleTitle
	}
	ids := make([]string, 0, len(productIDs))
	for _, id := range productIDs {
		if _, err := s.catalog.Lookup(id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	capsule := &models.Capsule{UserID: userID, Title: title, ProductIDs: ids}
	if err := s.repo.Create(capsule); err != nil {
		return nil, fmt.Errorf("failed to create capsule: %w", err)
	}
	s.logger.Info("capsule created", "capsule_id", capsule.ID, "user_id", userID, "products", len(ids))
	invalidateSummary(context.Background(), s.summary, s.logger)

	publishEvent(s.publisher, s.logger, rabbitmq.RoutingKeyCapsuleCreated, CapsuleEvent{
		CapsuleID: capsule.ID,
		UserID:    userID,
		Products:  len(ids),
		At:        capsule.CreatedAt,
	})
	return capsule, nil
}

// List returns the user's capsules, newest first.
func (s *CapsuleService) List(userID string) ([]models.Capsule, error) {
	return s.repo.ListByUser(userID)
}

// AddProduct appends a catalog product to an existing capsule. The capsule
// is resolved first, so an unknown capsule wins over a missing product id.
// The repository repeats the duplicate check atomically with the append.
func (s *CapsuleService) AddProduct(capsuleID, productID string) (*models.Capsule, error) {
	current, err := s.repo.GetByID(capsuleID)
	if err != nil {
		return nil, err
	}
	if productID == "" {
		return nil, fmt.Errorf("product id required: %w", models.ErrInvalidInput)
	}
	if current.HasProduct(productID) {
		return nil, fmt.Errorf("product %s: %w", productID, models.ErrProductAlreadyInCapsule)
	}
	if _, err := s.catalog.Lookup(productID); err != nil {
		return nil, err
	}

	capsule, err := s.repo.AddProduct(capsuleID, productID)
	if err != nil {
		if errors.Is(err, models.ErrProductAlreadyInCapsule) || errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add product to capsule %s: %w", capsuleID, err)
	}
	return capsule, nil
}

// Generate proposes a capsule wardrobe. Pieces cycle through a neutral
// palette and a fixed set of styles; prices are drawn uniformly from the
// requested range (20..200 by default).
func (s *CapsuleService) Generate(req GenerateRequest) (*models.GeneratedCapsule, error) {
	keywords, err := s.keywords(req)
	if err != nil {
		return nil, err
	}

	minPrice, maxPrice := defaultMinPrice, defaultMaxPrice
	if req.PriceRange != nil {
		if req.PriceRange.Min > 0 {
			minPrice = req.PriceRange.Min
		}
		if req.PriceRange.Max > 0 {
			maxPrice = req.PriceRange.Max
		}
	}
	if minPrice > maxPrice {
		return nil, fmt.Errorf("price range %v..%v: %w", minPrice, maxPrice, models.ErrInvalidInput)
	}

	n := req.NumPieces
	if n <= 0 {
		n = defaultPieces
	}

	matches := keywords
	if len(matches) > 2 {
		matches = matches[:2]
	}
	ethicsScore := generatedEthicsScore(req.Ethics)

	pieces := make([]models.GeneratedPiece, 0, n)
	for i := 0; i < n; i++ {
		style := capsuleStyles[i%len(capsuleStyles)]
		pieces = append(pieces, models.GeneratedPiece{
			ID:          uuid.New().String(),
			Label:       style + " " + slotFor(i),
			Color:       basePalette[i%len(basePalette)],
			Style:       style,
			Price:       math.Floor(s.random()*(maxPrice-minPrice) + minPrice + 0.5),
			EthicsScore: ethicsScore,
			Matches:     append([]string{}, matches...),
		})
	}

	return &models.GeneratedCapsule{
		GeneratedAt: s.now().UnixMilli(),
		Pieces:      pieces,
		Keywords:    keywords,
	}, nil
}

// keywords collects description words and moodboard image tags, deduplicated
// in first-seen order.
func (s *CapsuleService) keywords(req GenerateRequest) ([]string, error) {
	var raw []string
	for _, w := range nonAlnum.Split(strings.ToLower(req.Description), -1) {
		if w != "" {
			raw = append(raw, w)
		}
	}
	if req.MoodboardID != "" {
		board, err := s.moodboards.GetByID(req.MoodboardID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to load moodboard %s: %w", req.MoodboardID, err)
		}
		for _, img := range board.Images {
			raw = append(raw, img.Tags...)
		}
	}

	seen := make(map[string]bool, len(raw))
	keywords := []string{}
	for _, k := range raw {
		if seen[k] {
			continue
		}
		seen[k] = true
		keywords = append(keywords, k)
		if len(keywords) == maxKeywords {
			break
		}
	}
	return keywords, nil
}

func slotFor(i int) string {
	switch {
	case i < 3:
		return "top"
	case i < 6:
		return "bottom"
	case i < 9:
		return "outerwear"
	default:
		return "accessory"
	}
}

func generatedEthicsScore(ethics []string) float64 {
	if len(ethics) == 0 {
		return 0.3
	}
	for _, e := range ethics {
		if e == "recycled" {
			return 0.9
		}
	}
	return 0.5
}
