package repositories

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"oro/internal/models"
)

// MemoryClickRepository is an append-only in-memory ClickRepository.
type MemoryClickRepository struct {
	clicks []models.AffiliateClick
	mu     sync.RWMutex
}

// NewMemoryClickRepository creates a new instance of MemoryClickRepository.
func NewMemoryClickRepository() *MemoryClickRepository {
	return &MemoryClickRepository{}
}

// Create records a click.
func (r *MemoryClickRepository) Create(click *models.AffiliateClick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if click.ID == "" {
		click.ID = uuid.New().String()
	}
	if click.CreatedAt.IsZero() {
		click.CreatedAt = time.Now()
	}
	r.clicks = append(r.clicks, *click)
	return nil
}

// GetAll returns every click, oldest first.
func (r *MemoryClickRepository) GetAll() ([]models.AffiliateClick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]models.AffiliateClick{}, r.clicks...), nil
}
