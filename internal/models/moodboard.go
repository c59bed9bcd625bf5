package models

import "time"

// AnonymousUserID owns everything created without a valid token.
const AnonymousUserID = "anonymous"

// PriceRange is an inclusive price window.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price lies inside the range.
func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// MoodboardImage is an inspiration image pinned to a moodboard.
type MoodboardImage struct {
	URL  string   `json:"url"`
	Tags []string `json:"tags,omitempty"`
}

// Moodboard groups inspiration images with shopping preferences.
type Moodboard struct {
	ID          string           `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string           `json:"userId" gorm:"index;type:varchar(36)"`
	Title       string           `json:"title" gorm:"type:varchar(200)"`
	Description string           `json:"description"`
	Images      []MoodboardImage `json:"images" gorm:"serializer:json"`
	PriceRange  PriceRange       `json:"priceRange" gorm:"embedded;embeddedPrefix:price_"`
	Ethics      []string         `json:"ethics" gorm:"serializer:json"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// MoodboardSummary is the list view of a moodboard.
type MoodboardSummary struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Summary strips images and preferences.
func (m Moodboard) Summary() MoodboardSummary {
	return MoodboardSummary{ID: m.ID, Title: m.Title, Description: m.Description, CreatedAt: m.CreatedAt}
}
