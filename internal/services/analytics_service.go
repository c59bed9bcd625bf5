package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hashicorp/go-hclog"

	"oro/internal/cache"
	"oro/internal/catalog"
	"oro/internal/models"
	"oro/internal/repositories"
	"oro/pkg/rabbitmq"
)

const (
	topProductsLimit = 5
	dayLayout        = "2006-01-02"
)

// AnalyticsService records affiliate clicks and builds the dashboard summary.
type AnalyticsService struct {
	clicks    repositories.ClickRepository
	capsules  repositories.CapsuleRepository
	users     repositories.UserRepository
	catalog   catalog.Provider
	publisher EventPublisher
	cache     cache.SummaryCache
	logger    hclog.Logger
}

// NewAnalyticsService creates a new AnalyticsService. publisher may be nil.
func NewAnalyticsService(
	clicks repositories.ClickRepository,
	capsules repositories.CapsuleRepository,
	users repositories.UserRepository,
	provider catalog.Provider,
	publisher EventPublisher,
	logger hclog.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		clicks:    clicks,
		capsules:  capsules,
		users:     users,
		catalog:   provider,
		publisher: publisher,
		logger:    logger.Named("analytics"),
	}
}

// WithCache serves Summary from c until the next recorded click.
func (s *AnalyticsService) WithCache(c cache.SummaryCache) *AnalyticsService {
	s.cache = c
	return s
}

// RecordClick stores an affiliate click for a catalog product and returns
// the URL the shopper should be redirected to.
func (s *AnalyticsService) RecordClick(productID, userID string) (string, error) {
	product, err := s.catalog.Lookup(productID)
	if err != nil {
		return "", err
	}
	if userID == "" {
		userID = models.AnonymousUserID
	}

	click := &models.AffiliateClick{
		ProductID:    product.ID,
		UserID:       userID,
		AffiliateURL: product.AffiliateURL,
	}
	if err := s.clicks.Create(click); err != nil {
		return "", fmt.Errorf("failed to record click: %w", err)
	}
	s.logger.Info("affiliate click", "product_id", product.ID, "user_id", userID)
	invalidateSummary(context.Background(), s.cache, s.logger)

	publishEvent(s.publisher, s.logger, rabbitmq.RoutingKeyClickRecorded, ClickEvent{
		ProductID: product.ID,
		UserID:    userID,
		At:        click.CreatedAt,
	})
	return product.AffiliateURL, nil
}

// Summary aggregates users, clicks and capsules into the dashboard payload.
func (s *AnalyticsService) Summary(ctx context.Context) (*models.AnalyticsSummary, error) {
	var generation int64 = -1
	if s.cache != nil {
		summary, gen, ok := s.cache.Get(ctx)
		if ok {
			return summary, nil
		}
		generation = gen
	}

	totalUsers, err := s.users.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	clicks, err := s.clicks.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load clicks: %w", err)
	}
	capsules, err := s.capsules.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load capsules: %w", err)
	}

	summary := &models.AnalyticsSummary{
		TotalUsers:     totalUsers,
		TotalClicks:    len(clicks),
		TotalCapsules:  len(capsules),
		ConversionRate: conversionRate(len(capsules), len(clicks)),
		TopProducts:    s.topProducts(clicks),
		DailyStats:     map[string]models.DailyStat{},
	}
	for _, c := range clicks {
		day := c.CreatedAt.UTC().Format(dayLayout)
		stat := summary.DailyStats[day]
		stat.Clicks++
		summary.DailyStats[day] = stat
	}
	for _, c := range capsules {
		day := c.CreatedAt.UTC().Format(dayLayout)
		stat := summary.DailyStats[day]
		stat.Capsules++
		summary.DailyStats[day] = stat
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, generation, summary); err != nil {
			s.logger.Warn("failed to cache analytics summary", "error", err)
		}
	}
	return summary, nil
}

// HandleEvent consumes an analytics event delivered by the message broker.
func (s *AnalyticsService) HandleEvent(routingKey string, body []byte) error {
	switch routingKey {
	case rabbitmq.RoutingKeyClickRecorded:
		var ev ClickEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("invalid %s event: %w", routingKey, err)
		}
		s.logger.Info("click event", "product_id", ev.ProductID, "user_id", ev.UserID, "at", ev.At)
	case rabbitmq.RoutingKeyCapsuleCreated:
		var ev CapsuleEvent
		if err := json.Unmarshal(body, &ev); err != nil {
			return fmt.Errorf("invalid %s event: %w", routingKey, err)
		}
		s.logger.Info("capsule event", "capsule_id", ev.CapsuleID, "user_id", ev.UserID, "products", ev.Products)
	default:
		return fmt.Errorf("unknown routing key %q", routingKey)
	}
	return nil
}

// topProducts ranks products by click count. Ties keep first-click order.
func (s *AnalyticsService) topProducts(clicks []models.AffiliateClick) []models.TopProduct {
	counts := map[string]int{}
	var order []string
	for _, c := range clicks {
		if _, ok := counts[c.ProductID]; !ok {
			order = append(order, c.ProductID)
		}
		counts[c.ProductID]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > topProductsLimit {
		order = order[:topProductsLimit]
	}

	top := make([]models.TopProduct, 0, len(order))
	for _, id := range order {
		name := id
		if p, err := s.catalog.Lookup(id); err == nil {
			name = p.Title
		}
		top = append(top, models.TopProduct{Product: name, Clicks: counts[id]})
	}
	return top
}

func conversionRate(capsules, clicks int) string {
	if clicks == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.2f%%", float64(capsules)/float64(clicks)*100)
}

func invalidateSummary(ctx context.Context, c cache.SummaryCache, logger hclog.Logger) {
	if c == nil {
		return
	}
	if err := c.Invalidate(ctx); err != nil {
		logger.Warn("failed to invalidate analytics summary", "error", err)
	}
}
