package models

import "time"

// User represents a registered shopper.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // never serialized
	DisplayName  string    `json:"displayName" gorm:"type:varchar(100)"`
	Palette      []string  `json:"palette" gorm:"serializer:json"`
	EthicsPrefs  []string  `json:"ethicsPrefs" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
