package repositories

import "oro/internal/models"

// ClickRepository defines the interface for affiliate click data access.
type ClickRepository interface {
	Create(click *models.AffiliateClick) error
	// GetAll returns every click in the order it was recorded.
	GetAll() ([]models.AffiliateClick, error)
}
