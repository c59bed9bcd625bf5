package repositories

import "oro/internal/models"

// MoodboardRepository defines the interface for moodboard data access.
type MoodboardRepository interface {
	Create(board *models.Moodboard) error
	GetByID(id string) (*models.Moodboard, error)
	// ListByUser returns a user's boards, newest first, at most limit of them.
	ListByUser(userID string, limit int) ([]models.Moodboard, error)
}
