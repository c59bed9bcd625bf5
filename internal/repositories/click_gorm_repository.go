package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"oro/internal/models"
)

// GORMClickRepository is a GORM implementation of ClickRepository.
type GORMClickRepository struct {
	db *gorm.DB
}

// NewGORMClickRepository creates a new instance of GORMClickRepository.
func NewGORMClickRepository(db *gorm.DB) *GORMClickRepository {
	return &GORMClickRepository{db: db}
}

// Create records a click.
func (r *GORMClickRepository) Create(click *models.AffiliateClick) error {
	if click.ID == "" {
		click.ID = uuid.New().String()
	}
	if err := r.db.Create(click).Error; err != nil {
		return fmt.Errorf("failed to record affiliate click: %w", err)
	}
	return nil
}

// GetAll returns every click, oldest first.
func (r *GORMClickRepository) GetAll() ([]models.AffiliateClick, error) {
	clicks := []models.AffiliateClick{}
	if err := r.db.Order("created_at").Find(&clicks).Error; err != nil {
		return nil, fmt.Errorf("failed to get affiliate clicks: %w", err)
	}
	return clicks, nil
}
