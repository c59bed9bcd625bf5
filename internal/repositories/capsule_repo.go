package repositories

import "oro/internal/models"

// CapsuleRepository defines the interface for capsule data access.
type CapsuleRepository interface {
	Create(capsule *models.Capsule) error
	GetByID(id string) (*models.Capsule, error)
	// ListByUser returns a user's capsules, newest first.
	ListByUser(userID string) ([]models.Capsule, error)
	// AddProduct appends productID to the capsule atomically. It returns
	// models.ErrProductAlreadyInCapsule when the product is already present.
	AddProduct(capsuleID, productID string) (*models.Capsule, error)
	GetAll() ([]models.Capsule, error)
}
