package services

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"oro/internal/models"
	"oro/internal/repositories"
)

// Moodboard defaults.
const (
	defaultMoodboardTitle = "Untitled"
	defaultMoodboardMax   = 1000.0
	moodboardListLimit    = 50
)

// MoodboardInput is the client payload for a new moodboard.
type MoodboardInput struct {
	Title       string                  `json:"title" validate:"max=200"`
	Description string                  `json:"description" validate:"max=2000"`
	Images      []models.MoodboardImage `json:"images" validate:"max=100,dive"`
	PriceRange  *models.PriceRange      `json:"priceRange"`
	Ethics      []string                `json:"ethics" validate:"max=20"`
}

// MoodboardService handles business logic related to moodboards.
type MoodboardService struct {
	repo   repositories.MoodboardRepository
	logger hclog.Logger
}

// NewMoodboardService creates a new MoodboardService.
func NewMoodboardService(repo repositories.MoodboardRepository, logger hclog.Logger) *MoodboardService {
	return &MoodboardService{repo: repo, logger: logger.Named("moodboards")}
}

// Create stores a moodboard for userID, filling in defaults. A zero or
// missing maximum price means 1000.
func (s *MoodboardService) Create(userID string, in MoodboardInput) (*models.Moodboard, error) {
	board := &models.Moodboard{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Images:      in.Images,
		PriceRange:  models.PriceRange{Max: defaultMoodboardMax},
		Ethics:      in.Ethics,
	}
	if board.UserID == "" {
		board.UserID = models.AnonymousUserID
	}
	if board.Title == "" {
		board.Title = defaultMoodboardTitle
	}
	if board.Images == nil {
		board.Images = []models.MoodboardImage{}
	}
	if board.Ethics == nil {
		board.Ethics = []string{}
	}
	if in.PriceRange != nil {
		board.PriceRange.Min = in.PriceRange.Min
		if in.PriceRange.Max > 0 {
			board.PriceRange.Max = in.PriceRange.Max
		}
	}
	if board.PriceRange.Min < 0 || board.PriceRange.Min > board.PriceRange.Max {
		return nil, fmt.Errorf("price range %v..%v: %w", board.PriceRange.Min, board.PriceRange.Max, models.ErrInvalidInput)
	}

	if err := s.repo.Create(board); err != nil {
		return nil, err
	}
	s.logger.Info("moodboard created", "moodboard_id", board.ID, "user_id", board.UserID)
	return board, nil
}

// Get retrieves a moodboard by id.
func (s *MoodboardService) Get(id string) (*models.Moodboard, error) {
	return s.repo.GetByID(id)
}

// ListForUser returns summaries of the user's latest moodboards.
func (s *MoodboardService) ListForUser(userID string) ([]models.MoodboardSummary, error) {
	boards, err := s.repo.ListByUser(userID, moodboardListLimit)
	if err != nil {
		return nil, err
	}
	out := make([]models.MoodboardSummary, 0, len(boards))
	for _, b := range boards {
		out = append(out, b.Summary())
	}
	return out, nil
}
