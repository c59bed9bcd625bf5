package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"oro/internal/models"
)

// MemoryMoodboardRepository is an in-memory implementation of MoodboardRepository.
// Boards are kept newest first.
type MemoryMoodboardRepository struct {
	boards []models.Moodboard
	mu     sync.RWMutex
}

// NewMemoryMoodboardRepository creates a new instance of MemoryMoodboardRepository.
func NewMemoryMoodboardRepository() *MemoryMoodboardRepository {
	return &MemoryMoodboardRepository{}
}

// Create adds a new moodboard.
func (r *MemoryMoodboardRepository) Create(board *models.Moodboard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if board.ID == "" {
		board.ID = uuid.New().String()
	}
	board.CreatedAt = time.Now()
	r.boards = append([]models.Moodboard{*board}, r.boards...)
	return nil
}

// GetByID returns a moodboard by its ID.
func (r *MemoryMoodboardRepository) GetByID(id string) (*models.Moodboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.boards {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, fmt.Errorf("moodboard with ID %s: %w", id, models.ErrNotFound)
}

// ListByUser returns a user's moodboards, newest first.
func (r *MemoryMoodboardRepository) ListByUser(userID string, limit int) ([]models.Moodboard, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	boards := []models.Moodboard{}
	for _, b := range r.boards {
		if limit > 0 && len(boards) == limit {
			break
		}
		if b.UserID == userID {
			boards = append(boards, b)
		}
	}
	return boards, nil
}
