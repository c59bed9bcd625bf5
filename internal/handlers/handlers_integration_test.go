package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oro/internal/catalog"
	"oro/internal/database"
	"oro/internal/handlers"
	"oro/internal/models"
	"oro/internal/repositories"
	"oro/internal/search"
	"oro/internal/services"
)

const testJWTSecret = "test_jwt_secret"

// setupApp sets up a Fiber app for testing with in-memory SQLite and all handlers/services.
func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := hclog.New(&hclog.LoggerOptions{Name: "test", Output: io.Discard})

	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String()))
	require.NoError(t, err)

	provider, err := catalog.NewStatic(catalog.Default())
	require.NoError(t, err)

	userRepo := repositories.NewGORMUserRepository(db)
	moodboardRepo := repositories.NewGORMMoodboardRepository(db)
	capsuleRepo := repositories.NewGORMCapsuleRepository(db)
	clickRepo := repositories.NewGORMClickRepository(db)

	authService := services.NewAuthService(userRepo, testJWTSecret, time.Hour, logger)
	productService := services.NewProductService(provider, search.NewEngine(), moodboardRepo, logger)
	moodboardService := services.NewMoodboardService(moodboardRepo, logger)
	capsuleService := services.NewCapsuleService(capsuleRepo, provider, moodboardRepo, nil, logger)
	analyticsService := services.NewAnalyticsService(clickRepo, capsuleRepo, userRepo, provider, nil, logger)

	app := fiber.New()
	api := app.Group("/api")
	handlers.NewAuthHandler(authService, logger).RegisterRoutes(api)
	handlers.NewProductHandler(productService, authService, 0, logger).RegisterRoutes(api)
	handlers.NewMoodboardHandler(moodboardService, authService, logger).RegisterRoutes(api)
	handlers.NewCapsuleHandler(capsuleService, authService, logger).RegisterRoutes(api)
	handlers.NewAnalyticsHandler(analyticsService, authService, logger).RegisterRoutes(api)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any, token string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1) // -1 for no timeout
	require.NoError(t, err)
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, respBody
}

func signup(t *testing.T, app *fiber.App, email string) services.AuthResult {
	t.Helper()
	status, body := doRequest(t, app, http.MethodPost, "/api/signup", map[string]string{
		"email": email, "password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, status, string(body))
	var result services.AuthResult
	require.NoError(t, json.Unmarshal(body, &result))
	return result
}

func productIDs(t *testing.T, body []byte) []string {
	t.Helper()
	var products []models.Product
	require.NoError(t, json.Unmarshal(body, &products))
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestAuthSignupLoginProfile(t *testing.T) {
	app := setupApp(t)

	registered := signup(t, app, "Test@Example.com")
	assert.Equal(t, "test@example.com", registered.Email)
	assert.Equal(t, "test", registered.DisplayName)
	assert.NotEmpty(t, registered.Token)

	status, _ := doRequest(t, app, http.MethodPost, "/api/signup", map[string]string{
		"email": "test@example.com", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusConflict, status)

	status, body := doRequest(t, app, http.MethodPost, "/api/signup", map[string]string{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "Validation failed")
	assert.Contains(t, string(body), "Password")

	status, body = doRequest(t, app, http.MethodPost, "/api/login", map[string]string{
		"email": "test@example.com", "password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, status)
	var login services.AuthResult
	require.NoError(t, json.Unmarshal(body, &login))
	assert.Equal(t, registered.UserID, login.UserID)

	status, _ = doRequest(t, app, http.MethodPost, "/api/login", map[string]string{
		"email": "test@example.com", "password": "wrong-password",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/profile", nil, login.Token)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"email":"test@example.com"`)
	assert.NotContains(t, string(body), "password")

	status, _ = doRequest(t, app, http.MethodGet, "/api/profile", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/profile", nil, "invalid.token.string")
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProductSearch(t *testing.T) {
	app := setupApp(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"blazer under 100", "?q=blazer&max=100", []string{"hm1", "zara1"}},
		{"ethics filter", "?ethics=organic-cotton", []string{"hm2", "everlane1"}},
		{"limit", "?q=blazer&limit=1", []string{"hm1"}},
		{"inclusive bounds", "?min=49.99&max=49.99", []string{"hm1"}},
		{"title hits first", "?q=coat", []string{"stories1", "hm1", "zara1", "cos1", "massimo1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, http.MethodGet, "/api/products"+tt.query, nil, "")
			require.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.want, productIDs(t, body))
		})
	}

	t.Run("unparseable bounds are ignored", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/products?min=abc&max=", nil, "")
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, productIDs(t, body), len(catalog.Default()))
	})

	t.Run("no results is an empty array", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/products?q=zzzz", nil, "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, "[]", string(body))
	})
}

func TestProductGetByID(t *testing.T) {
	app := setupApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/products/everlane1", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"affiliateUrl"`)

	status, _ = doRequest(t, app, http.MethodGet, "/api/products/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProductMatch(t *testing.T) {
	app := setupApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/products/match", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, string(body), "Piece data required")

	status, _ = doRequest(t, app, http.MethodPost, "/api/products/match", map[string]any{
		"piece": map[string]any{"ethicsScore": 3},
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = doRequest(t, app, http.MethodPost, "/api/products/match", map[string]any{
		"piece": map[string]any{"style": "blazer", "price": 100},
	}, "")
	require.Equal(t, http.StatusOK, status)
	var scored []models.ScoredProduct
	require.NoError(t, json.Unmarshal(body, &scored))
	require.NotEmpty(t, scored)
	assert.LessOrEqual(t, len(scored), 6)
	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}

	status, _ = doRequest(t, app, http.MethodPost, "/api/products/match", map[string]any{
		"piece":       map[string]any{"style": "blazer"},
		"moodboardId": "missing",
	}, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMoodboardsAndGeneration(t *testing.T) {
	app := setupApp(t)
	user := signup(t, app, "board@example.com")

	status, body := doRequest(t, app, http.MethodPost, "/api/moodboards", map[string]any{
		"title":      "Office",
		"images":     []map[string]any{{"url": "https://img.example.com/1.jpg", "tags": []string{"tailored", "navy"}}},
		"priceRange": map[string]any{"min": 0, "max": 60},
		"ethics":     []string{"conscious"},
	}, user.Token)
	require.Equal(t, http.StatusCreated, status, string(body))
	var board models.Moodboard
	require.NoError(t, json.Unmarshal(body, &board))
	assert.Equal(t, user.UserID, board.UserID)

	status, body = doRequest(t, app, http.MethodPost, "/api/moodboards", map[string]any{}, "")
	require.Equal(t, http.StatusCreated, status)
	assert.Contains(t, string(body), `"title":"Untitled"`)
	assert.Contains(t, string(body), `"userId":"anonymous"`)

	status, body = doRequest(t, app, http.MethodGet, "/api/moodboards/"+board.ID, nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), "tailored")

	status, _ = doRequest(t, app, http.MethodGet, "/api/moodboards/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/moodboards", nil, user.Token)
	require.Equal(t, http.StatusOK, status)
	var summaries []models.MoodboardSummary
	require.NoError(t, json.Unmarshal(body, &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Office", summaries[0].Title)
	assert.NotContains(t, string(body), "images")

	status, body = doRequest(t, app, http.MethodPost, "/api/products/match", map[string]any{
		"piece":       map[string]any{"style": "blazer"},
		"moodboardId": board.ID,
	}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"hm1"}, productIDs(t, body))

	status, body = doRequest(t, app, http.MethodPost, "/api/generate-capsule", map[string]any{
		"description": "Sharp office looks",
		"moodboardId": board.ID,
		"numPieces":   4,
	}, "")
	require.Equal(t, http.StatusOK, status, string(body))
	var generated models.GeneratedCapsule
	require.NoError(t, json.Unmarshal(body, &generated))
	assert.Len(t, generated.Pieces, 4)
	assert.Greater(t, generated.GeneratedAt, int64(1_600_000_000_000))
	assert.Equal(t, []string{"sharp", "office", "looks", "tailored", "navy"}, generated.Keywords)

	status, _ = doRequest(t, app, http.MethodPost, "/api/generate-capsule", map[string]any{
		"priceRange": map[string]any{"min": 500, "max": 100},
	}, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestCapsules(t *testing.T) {
	app := setupApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/capsules", map[string]any{
		"productIds": []string{"hm1"},
	}, "")
	require.Equal(t, http.StatusCreated, status, string(body))
	var capsule models.Capsule
	require.NoError(t, json.Unmarshal(body, &capsule))
	assert.Equal(t, "My Capsule", capsule.Title)
	assert.Equal(t, models.AnonymousUserID, capsule.UserID)

	status, _ = doRequest(t, app, http.MethodPost, "/api/capsules", map[string]any{
		"productIds": []string{"nope"},
	}, "")
	assert.Equal(t, http.StatusNotFound, status)

	addPath := "/api/capsules/" + capsule.ID + "/add-product"
	status, body = doRequest(t, app, http.MethodPost, addPath, map[string]string{"productId": "zara2"}, "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"productIds":["hm1","zara2"]`)

	status, _ = doRequest(t, app, http.MethodPost, addPath, map[string]string{"productId": "zara2"}, "")
	assert.Equal(t, http.StatusConflict, status)

	status, _ = doRequest(t, app, http.MethodPost, addPath, map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodPost, addPath, map[string]string{"productId": "nope"}, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/capsules/missing/add-product", map[string]string{}, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = doRequest(t, app, http.MethodGet, "/api/capsules?userId=anonymous", nil, "")
	require.Equal(t, http.StatusOK, status)
	var capsules []models.Capsule
	require.NoError(t, json.Unmarshal(body, &capsules))
	require.Len(t, capsules, 1)
	assert.Equal(t, []string{"hm1", "zara2"}, capsules[0].ProductIDs)
}

func TestAffiliateClicksAndAnalytics(t *testing.T) {
	app := setupApp(t)
	user := signup(t, app, "shopper@example.com")

	status, _ := doRequest(t, app, http.MethodPost, "/api/affiliate-click", map[string]string{}, "")
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/affiliate-click", map[string]string{"productId": "nope"}, "")
	assert.Equal(t, http.StatusNotFound, status)

	for _, id := range []string{"cos1", "cos1", "hm2"} {
		status, body := doRequest(t, app, http.MethodPost, "/api/affiliate-click", map[string]string{"productId": id}, user.Token)
		require.Equal(t, http.StatusOK, status)
		assert.Contains(t, string(body), `"success":true`)
		assert.Contains(t, string(body), `"redirectUrl":"https://`)
	}
	status, _ = doRequest(t, app, http.MethodPost, "/api/capsules", map[string]any{"title": "Weekend"}, user.Token)
	require.Equal(t, http.StatusCreated, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/analytics", nil, "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := doRequest(t, app, http.MethodGet, "/api/analytics", nil, user.Token)
	require.Equal(t, http.StatusOK, status)
	var summary models.AnalyticsSummary
	require.NoError(t, json.Unmarshal(body, &summary))
	assert.Equal(t, int64(1), summary.TotalUsers)
	assert.Equal(t, 3, summary.TotalClicks)
	assert.Equal(t, 1, summary.TotalCapsules)
	assert.Equal(t, "33.33%", summary.ConversionRate)
	require.NotEmpty(t, summary.TopProducts)
	assert.Equal(t, models.TopProduct{Product: "COS Relaxed Blazer", Clicks: 2}, summary.TopProducts[0])

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, models.DailyStat{Clicks: 3, Capsules: 1}, summary.DailyStats[today])
}
