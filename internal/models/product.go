package models

// Product is a read-only catalog entry. It is never persisted by this service;
// the catalog is loaded once at startup and shared as an immutable snapshot.
type Product struct {
	ID           string   `json:"id" yaml:"id" validate:"required"`
	Title        string   `json:"title" yaml:"title" validate:"required,max=200"`
	Price        float64  `json:"price" yaml:"price" validate:"gte=0"`
	Tags         []string `json:"tags" yaml:"tags"`
	Shop         string   `json:"shop" yaml:"shop"`
	Category     string   `json:"category" yaml:"category"`
	Color        string   `json:"color" yaml:"color"`
	EthicsFlags  []string `json:"ethicsFlags" yaml:"ethicsFlags"`
	Description  string   `json:"description" yaml:"description" validate:"omitempty,max=500"`
	AffiliateURL string   `json:"affiliateUrl" yaml:"affiliateUrl" validate:"omitempty,url"`
	Image        string   `json:"image" yaml:"image" validate:"omitempty,url"`
}

// ScoredProduct is a Product ranked against a style piece.
type ScoredProduct struct {
	Product
	Score float64 `json:"score"`
}
