package models

import "time"

// AffiliateClick records a shopper following a product's affiliate link.
type AffiliateClick struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID    string    `json:"productId" gorm:"index;type:varchar(64)"`
	UserID       string    `json:"userId" gorm:"index;type:varchar(36)"`
	AffiliateURL string    `json:"affiliateUrl"`
	CreatedAt    time.Time `json:"timestamp"`
}

// DailyStat aggregates activity for one calendar day.
type DailyStat struct {
	Clicks   int `json:"clicks"`
	Capsules int `json:"capsules"`
}

// TopProduct is a product ranked by affiliate clicks.
type TopProduct struct {
	Product string `json:"product"`
	Clicks  int    `json:"clicks"`
}

// AnalyticsSummary is the dashboard payload.
type AnalyticsSummary struct {
	TotalUsers     int64                `json:"totalUsers"`
	TotalClicks    int                  `json:"totalClicks"`
	TotalCapsules  int                  `json:"totalCapsules"`
	ConversionRate string               `json:"conversionRate"`
	TopProducts    []TopProduct         `json:"topProducts"`
	DailyStats     map[string]DailyStat `json:"dailyStats"`
}
