package services_test

import (
	"context"
	"io"
	"os"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/mock"

	"oro/internal/catalog"
	"oro/internal/models"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockMoodboardRepository is a mock implementation of repositories.MoodboardRepository
type MockMoodboardRepository struct {
	mock.Mock
}

func (m *MockMoodboardRepository) Create(board *models.Moodboard) error {
	args := m.Called(board)
	return args.Error(0)
}

func (m *MockMoodboardRepository) GetByID(id string) (*models.Moodboard, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Moodboard), args.Error(1)
}

func (m *MockMoodboardRepository) ListByUser(userID string, limit int) ([]models.Moodboard, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Moodboard), args.Error(1)
}

// MockCapsuleRepository is a mock implementation of repositories.CapsuleRepository
type MockCapsuleRepository struct {
	mock.Mock
}

func (m *MockCapsuleRepository) Create(capsule *models.Capsule) error {
	args := m.Called(capsule)
	return args.Error(0)
}

func (m *MockCapsuleRepository) GetByID(id string) (*models.Capsule, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Capsule), args.Error(1)
}

func (m *MockCapsuleRepository) ListByUser(userID string) ([]models.Capsule, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Capsule), args.Error(1)
}

func (m *MockCapsuleRepository) AddProduct(capsuleID, productID string) (*models.Capsule, error) {
	args := m.Called(capsuleID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Capsule), args.Error(1)
}

func (m *MockCapsuleRepository) GetAll() ([]models.Capsule, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Capsule), args.Error(1)
}

// MockClickRepository is a mock implementation of repositories.ClickRepository
type MockClickRepository struct {
	mock.Mock
}

func (m *MockClickRepository) Create(click *models.AffiliateClick) error {
	args := m.Called(click)
	return args.Error(0)
}

func (m *MockClickRepository) GetAll() ([]models.AffiliateClick, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AffiliateClick), args.Error(1)
}

// MockPublisher records published events.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

// MockSummaryCache is a mock implementation of cache.SummaryCache
type MockSummaryCache struct {
	mock.Mock
}

func (m *MockSummaryCache) Get(ctx context.Context) (*models.AnalyticsSummary, int64, bool) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Bool(2)
	}
	return args.Get(0).(*models.AnalyticsSummary), args.Get(1).(int64), args.Bool(2)
}

func (m *MockSummaryCache) Set(ctx context.Context, generation int64, summary *models.AnalyticsSummary) error {
	args := m.Called(ctx, generation, summary)
	return args.Error(0)
}

func (m *MockSummaryCache) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var testLogger hclog.Logger

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	testLogger = hclog.New(&hclog.LoggerOptions{Name: "test", Output: io.Discard})
	os.Exit(m.Run())
}

func defaultCatalog(t *testing.T) *catalog.Static {
	t.Helper()
	provider, err := catalog.NewStatic(catalog.Default())
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	return provider
}
