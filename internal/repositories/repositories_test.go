package repositories_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"oro/internal/database"
	"oro/internal/models"
	"oro/internal/repositories"
)

type repoSet struct {
	users      repositories.UserRepository
	moodboards repositories.MoodboardRepository
	capsules   repositories.CapsuleRepository
	clicks     repositories.ClickRepository
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// backends runs the same contract against the GORM and in-memory repositories.
func backends(t *testing.T) map[string]repoSet {
	db := openTestDB(t)
	return map[string]repoSet{
		"gorm": {
			users:      repositories.NewGORMUserRepository(db),
			moodboards: repositories.NewGORMMoodboardRepository(db),
			capsules:   repositories.NewGORMCapsuleRepository(db),
			clicks:     repositories.NewGORMClickRepository(db),
		},
		"memory": {
			users:      repositories.NewMemoryUserRepository(),
			moodboards: repositories.NewMemoryMoodboardRepository(),
			capsules:   repositories.NewMemoryCapsuleRepository(),
			clicks:     repositories.NewMemoryClickRepository(),
		},
	}
}

func TestUserRepository(t *testing.T) {
	for name, repos := range backends(t) {
		t.Run(name, func(t *testing.T) {
			user := &models.User{Email: "ada@example.com", PasswordHash: "hash", DisplayName: "ada"}
			require.NoError(t, repos.users.Create(user))
			assert.NotEmpty(t, user.ID)

			got, err := repos.users.GetByEmail("ada@example.com")
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
			assert.Equal(t, "hash", got.PasswordHash)

			got, err = repos.users.GetByID(user.ID)
			require.NoError(t, err)
			assert.Equal(t, "ada", got.DisplayName)

			_, err = repos.users.GetByEmail("nobody@example.com")
			assert.ErrorIs(t, err, models.ErrNotFound)
			_, err = repos.users.GetByID("missing")
			assert.ErrorIs(t, err, models.ErrNotFound)

			assert.Error(t, repos.users.Create(&models.User{Email: "ada@example.com"}))

			n, err := repos.users.Count()
			require.NoError(t, err)
			assert.Equal(t, int64(1), n)
		})
	}
}

func TestMoodboardRepository(t *testing.T) {
	for name, repos := range backends(t) {
		t.Run(name, func(t *testing.T) {
			first := &models.Moodboard{
				UserID:     "u1",
				Title:      "Autumn",
				Images:     []models.MoodboardImage{{URL: "https://example.com/a.jpg", Tags: []string{"wool"}}},
				PriceRange: models.PriceRange{Min: 10, Max: 100},
				Ethics:     []string{"wool"},
			}
			require.NoError(t, repos.moodboards.Create(first))
			time.Sleep(2 * time.Millisecond)
			second := &models.Moodboard{UserID: "u1", Title: "Winter", PriceRange: models.PriceRange{Max: 1000}}
			require.NoError(t, repos.moodboards.Create(second))
			require.NoError(t, repos.moodboards.Create(&models.Moodboard{UserID: "u2", Title: "Other"}))

			got, err := repos.moodboards.GetByID(first.ID)
			require.NoError(t, err)
			assert.Equal(t, "Autumn", got.Title)
			assert.Equal(t, []string{"wool"}, got.Images[0].Tags)
			assert.Equal(t, models.PriceRange{Min: 10, Max: 100}, got.PriceRange)
			assert.Equal(t, []string{"wool"}, got.Ethics)

			list, err := repos.moodboards.ListByUser("u1", 50)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "Winter", list[0].Title)

			list, err = repos.moodboards.ListByUser("u1", 1)
			require.NoError(t, err)
			assert.Len(t, list, 1)

			_, err = repos.moodboards.GetByID("missing")
			assert.ErrorIs(t, err, models.ErrNotFound)
		})
	}
}

func TestCapsuleRepository(t *testing.T) {
	for name, repos := range backends(t) {
		t.Run(name, func(t *testing.T) {
			capsule := &models.Capsule{UserID: "u1", Title: "Work", ProductIDs: []string{"zara1"}}
			require.NoError(t, repos.capsules.Create(capsule))
			time.Sleep(2 * time.Millisecond)
			require.NoError(t, repos.capsules.Create(&models.Capsule{UserID: "u1", Title: "Weekend", ProductIDs: []string{}}))

			added, err := repos.capsules.AddProduct(capsule.ID, "hm1")
			require.NoError(t, err)
			assert.Equal(t, []string{"zara1", "hm1"}, added.ProductIDs)

			_, err = repos.capsules.AddProduct(capsule.ID, "hm1")
			assert.ErrorIs(t, err, models.ErrProductAlreadyInCapsule)

			got, err := repos.capsules.GetByID(capsule.ID)
			require.NoError(t, err)
			assert.Equal(t, []string{"zara1", "hm1"}, got.ProductIDs)

			list, err := repos.capsules.ListByUser("u1")
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "Weekend", list[0].Title)

			all, err := repos.capsules.GetAll()
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "Work", all[0].Title)

			_, err = repos.capsules.AddProduct("missing", "hm1")
			assert.ErrorIs(t, err, models.ErrNotFound)
			_, err = repos.capsules.GetByID("missing")
			assert.ErrorIs(t, err, models.ErrNotFound)
		})
	}
}

func TestCapsuleRepository_AddProductConcurrent(t *testing.T) {
	for name, repos := range backends(t) {
		t.Run(name, func(t *testing.T) {
			capsule := &models.Capsule{UserID: "u1", Title: "Race", ProductIDs: []string{}}
			require.NoError(t, repos.capsules.Create(capsule))

			want := make([]string, 0, 17)
			for i := 0; i < 17; i++ {
				want = append(want, fmt.Sprintf("p%d", i))
			}

			var wg sync.WaitGroup
			var mu sync.Mutex
			added, duplicates := 0, 0
			for _, id := range want {
				for i := 0; i < 2; i++ {
					wg.Add(1)
					go func(id string) {
						defer wg.Done()
						_, err := repos.capsules.AddProduct(capsule.ID, id)
						mu.Lock()
						defer mu.Unlock()
						switch {
						case err == nil:
							added++
						case errors.Is(err, models.ErrProductAlreadyInCapsule):
							duplicates++
						default:
							t.Errorf("add %s: %v", id, err)
						}
					}(id)
				}
			}
			wg.Wait()

			assert.Equal(t, len(want), added)
			assert.Equal(t, len(want), duplicates)
			got, err := repos.capsules.GetByID(capsule.ID)
			require.NoError(t, err)
			assert.ElementsMatch(t, want, got.ProductIDs)
		})
	}
}

func TestClickRepository(t *testing.T) {
	for name, repos := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, repos.clicks.Create(&models.AffiliateClick{ProductID: "hm1", UserID: "u1", AffiliateURL: "https://example.com"}))
			time.Sleep(2 * time.Millisecond)
			require.NoError(t, repos.clicks.Create(&models.AffiliateClick{ProductID: "zara1", UserID: models.AnonymousUserID}))

			all, err := repos.clicks.GetAll()
			require.NoError(t, err)
			require.Len(t, all, 2)
			assert.Equal(t, "hm1", all[0].ProductID)
			assert.NotEmpty(t, all[0].ID)
			assert.False(t, all[0].CreatedAt.IsZero())
		})
	}
}
