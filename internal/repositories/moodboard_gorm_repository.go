package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"oro/internal/models"
)

// GORMMoodboardRepository is a GORM implementation of MoodboardRepository.
type GORMMoodboardRepository struct {
	db *gorm.DB
}

// NewGORMMoodboardRepository creates a new instance of GORMMoodboardRepository.
func NewGORMMoodboardRepository(db *gorm.DB) *GORMMoodboardRepository {
	return &GORMMoodboardRepository{db: db}
}

// Create stores a new moodboard.
func (r *GORMMoodboardRepository) Create(board *models.Moodboard) error {
	if board.ID == "" {
		board.ID = uuid.New().String()
	}
	if err := r.db.Create(board).Error; err != nil {
		return fmt.Errorf("failed to create moodboard: %w", err)
	}
	return nil
}

// GetByID retrieves a moodboard by its ID.
func (r *GORMMoodboardRepository) GetByID(id string) (*models.Moodboard, error) {
	var board models.Moodboard
	if err := r.db.First(&board, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("moodboard with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get moodboard by ID %s: %w", id, err)
	}
	return &board, nil
}

// ListByUser returns a user's moodboards, newest first.
func (r *GORMMoodboardRepository) ListByUser(userID string, limit int) ([]models.Moodboard, error) {
	boards := []models.Moodboard{}
	q := r.db.Where("user_id = ?", userID).Order("created_at desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&boards).Error; err != nil {
		return nil, fmt.Errorf("failed to list moodboards for user %s: %w", userID, err)
	}
	return boards, nil
}
