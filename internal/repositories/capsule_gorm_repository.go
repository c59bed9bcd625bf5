package repositories

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"oro/internal/models"
)

// GORMCapsuleRepository is a GORM implementation of CapsuleRepository.
type GORMCapsuleRepository struct {
	db *gorm.DB
	mu sync.Mutex
}

// NewGORMCapsuleRepository creates a new instance of GORMCapsuleRepository.
func NewGORMCapsuleRepository(db *gorm.DB) *GORMCapsuleRepository {
	return &GORMCapsuleRepository{db: db}
}

// Create stores a new capsule.
func (r *GORMCapsuleRepository) Create(capsule *models.Capsule) error {
	if capsule.ID == "" {
		capsule.ID = uuid.New().String()
	}
	if err := r.db.Create(capsule).Error; err != nil {
		return fmt.Errorf("failed to create capsule: %w", err)
	}
	return nil
}

// GetByID retrieves a capsule by its ID.
func (r *GORMCapsuleRepository) GetByID(id string) (*models.Capsule, error) {
	var capsule models.Capsule
	if err := r.db.First(&capsule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("capsule with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get capsule by ID %s: %w", id, err)
	}
	return &capsule, nil
}

// ListByUser returns a user's capsules, newest first.
func (r *GORMCapsuleRepository) ListByUser(userID string) ([]models.Capsule, error) {
	capsules := []models.Capsule{}
	if err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&capsules).Error; err != nil {
		return nil, fmt.Errorf("failed to list capsules for user %s: %w", userID, err)
	}
	return capsules, nil
}

// AddProduct appends a product inside a transaction that locks the capsule
// row. sqlite ignores FOR UPDATE, so writers in this process are also
// serialized by mu.
func (r *GORMCapsuleRepository) AddProduct(capsuleID, productID string) (*models.Capsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var capsule models.Capsule
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&capsule, "id = ?", capsuleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("capsule with ID %s: %w", capsuleID, models.ErrNotFound)
			}
			return fmt.Errorf("failed to lock capsule %s: %w", capsuleID, err)
		}
		if capsule.HasProduct(productID) {
			return fmt.Errorf("product %s: %w", productID, models.ErrProductAlreadyInCapsule)
		}
		capsule.ProductIDs = append(capsule.ProductIDs, productID)
		capsule.UpdatedAt = time.Now()
		if err := tx.Model(&capsule).Select("product_ids", "updated_at").Updates(&capsule).Error; err != nil {
			return fmt.Errorf("failed to add product to capsule %s: %w", capsuleID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &capsule, nil
}

// GetAll returns every capsule.
func (r *GORMCapsuleRepository) GetAll() ([]models.Capsule, error) {
	capsules := []models.Capsule{}
	if err := r.db.Order("created_at").Find(&capsules).Error; err != nil {
		return nil, fmt.Errorf("failed to get all capsules: %w", err)
	}
	return capsules, nil
}
