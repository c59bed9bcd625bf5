package models

import "time"

// Capsule is a user's curated collection of catalog products.
type Capsule struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"userId" gorm:"index;type:varchar(36)"`
	Title      string    `json:"title" gorm:"type:varchar(200)"`
	ProductIDs []string  `json:"productIds" gorm:"serializer:json"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// HasProduct reports whether productID is already part of the capsule.
func (c Capsule) HasProduct(productID string) bool {
	for _, id := range c.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// GeneratedPiece is one slot of a generated capsule wardrobe. Its style, color,
// price and ethics score can be fed straight into product matching.
type GeneratedPiece struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Color       string   `json:"color"`
	Style       string   `json:"style"`
	Price       float64  `json:"price"`
	EthicsScore float64  `json:"ethicsScore"`
	Matches     []string `json:"matches"`
}

// GeneratedCapsule is the output of the capsule generator. GeneratedAt is
// in Unix milliseconds.
type GeneratedCapsule struct {
	GeneratedAt int64            `json:"generatedAt"`
	Pieces      []GeneratedPiece `json:"pieces"`
	Keywords    []string         `json:"keywords"`
}
