package repositories

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"oro/internal/models"
)

// MemoryCapsuleRepository is an in-memory implementation of CapsuleRepository.
type MemoryCapsuleRepository struct {
	capsules []models.Capsule // newest first
	mu       sync.RWMutex
}

// NewMemoryCapsuleRepository creates a new instance of MemoryCapsuleRepository.
func NewMemoryCapsuleRepository() *MemoryCapsuleRepository {
	return &MemoryCapsuleRepository{}
}

// Create adds a new capsule.
func (r *MemoryCapsuleRepository) Create(capsule *models.Capsule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if capsule.ID == "" {
		capsule.ID = uuid.New().String()
	}
	capsule.CreatedAt = time.Now()
	capsule.UpdatedAt = capsule.CreatedAt
	r.capsules = append([]models.Capsule{cloneCapsule(*capsule)}, r.capsules...)
	return nil
}

// GetByID returns a capsule by its ID.
func (r *MemoryCapsuleRepository) GetByID(id string) (*models.Capsule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.capsules {
		if c.ID == id {
			out := cloneCapsule(c)
			return &out, nil
		}
	}
	return nil, fmt.Errorf("capsule with ID %s: %w", id, models.ErrNotFound)
}

// ListByUser returns a user's capsules, newest first.
func (r *MemoryCapsuleRepository) ListByUser(userID string) ([]models.Capsule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.Capsule{}
	for _, c := range r.capsules {
		if c.UserID == userID {
			out = append(out, cloneCapsule(c))
		}
	}
	return out, nil
}

// AddProduct appends a product under the write lock.
func (r *MemoryCapsuleRepository) AddProduct(capsuleID, productID string) (*models.Capsule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.capsules {
		c := &r.capsules[i]
		if c.ID != capsuleID {
			continue
		}
		if c.HasProduct(productID) {
			return nil, fmt.Errorf("product %s: %w", productID, models.ErrProductAlreadyInCapsule)
		}
		c.ProductIDs = append(c.ProductIDs, productID)
		c.UpdatedAt = time.Now()
		out := cloneCapsule(*c)
		return &out, nil
	}
	return nil, fmt.Errorf("capsule with ID %s: %w", capsuleID, models.ErrNotFound)
}

// GetAll returns every capsule, oldest first.
func (r *MemoryCapsuleRepository) GetAll() ([]models.Capsule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Capsule, 0, len(r.capsules))
	for i := len(r.capsules) - 1; i >= 0; i-- {
		out = append(out, cloneCapsule(r.capsules[i]))
	}
	return out, nil
}

func cloneCapsule(c models.Capsule) models.Capsule {
	c.ProductIDs = append([]string{}, c.ProductIDs...)
	return c
}
