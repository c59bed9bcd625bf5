package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hashicorp/go-hclog"
	"github.com/streadway/amqp"

	"oro/internal/cache"
	"oro/internal/catalog"
	"oro/internal/config"
	"oro/internal/database"
	"oro/internal/handlers"
	"oro/internal/middleware"
	"oro/internal/models"
	"oro/internal/repositories"
	"oro/internal/search"
	"oro/internal/services"
	"oro/pkg/rabbitmq"
)

// App bundles the HTTP server with the pieces main needs to run and stop it.
type App struct {
	Fiber     *fiber.App
	Analytics *services.AnalyticsService
	close     func() error
}

// Close releases the database connection.
func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

type repositorySet struct {
	users      repositories.UserRepository
	moodboards repositories.MoodboardRepository
	capsules   repositories.CapsuleRepository
	clicks     repositories.ClickRepository
	close      func() error
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log := newLogger(cfg)

	// --- Initialize RabbitMQ Client ---
	// The broker is optional; without it events are only logged.
	var (
		publisher services.EventPublisher
		mqClient  *rabbitmq.Client
	)
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log.Named("rabbitmq"))
		if err != nil {
			log.Error("failed to initialize RabbitMQ client, continuing without events", "error", err)
		} else {
			publisher = mqClient
			defer mqClient.Close()
		}
	}

	// --- Initialize Redis summary cache ---
	var summaryCache cache.SummaryCache
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.Connect(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			log.Error("failed to connect to Redis, analytics summary will not be cached", "error", err)
		} else {
			defer redisClient.Close()
			summaryCache = cache.NewRedisSummaryCache(redisClient, cache.WithTTL(cfg.SummaryCacheTTL))
		}
	}

	app, err := NewApp(cfg, log, publisher, summaryCache)
	if err != nil {
		log.Error("failed to build application", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	// --- Start RabbitMQ Consumer ---
	if mqClient != nil {
		if err := mqClient.ConsumeAnalyticsEvents(func(msg amqp.Delivery) error {
			return app.Analytics.HandleEvent(msg.RoutingKey, msg.Body)
		}); err != nil {
			log.Error("failed to start RabbitMQ consumer", "error", err)
		}
	}

	// --- Start HTTP Server ---
	log.Info("starting server", "port", cfg.AppPort, "db_driver", cfg.DBDriver)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Fiber.Listen(cfg.AppPort); err != nil {
			log.Error("server failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info("shutting down server")
	if err := app.Fiber.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error("error during Fiber shutdown", "error", err)
	}
	log.Info("server gracefully stopped")
}

// NewApp wires repositories, services and handlers into a Fiber app.
// publisher and summaryCache may be nil.
func NewApp(cfg *config.Config, log hclog.Logger, publisher services.EventPublisher, summaryCache cache.SummaryCache) (*App, error) {
	products, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	provider, err := catalog.NewStatic(products)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded", "products", provider.Len(), "path", cfg.CatalogPath)

	repos, err := newRepositories(cfg)
	if err != nil {
		return nil, err
	}

	// --- Initialize Services ---
	engine := search.NewEngine(search.WithMatchLimit(cfg.MatchLimit))
	authService := services.NewAuthService(repos.users, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := services.NewProductService(provider, engine, repos.moodboards, log)
	moodboardService := services.NewMoodboardService(repos.moodboards, log)
	capsuleService := services.NewCapsuleService(repos.capsules, provider, repos.moodboards, publisher, log)
	analyticsService := services.NewAnalyticsService(repos.clicks, repos.capsules, repos.users, provider, publisher, log)
	if summaryCache != nil {
		capsuleService.WithSummaryCache(summaryCache)
		analyticsService.WithCache(summaryCache)
	}

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{AppName: "oro"})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowedOrigins}))

	broker := "disabled"
	if publisher != nil {
		broker = "connected"
	}
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
			"broker": broker,
		})
	})

	// --- API Routes ---
	api := app.Group("/api", middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Handler())
	handlers.NewAuthHandler(authService, log).RegisterRoutes(api)
	handlers.NewProductHandler(productService, authService, cfg.SearchLimit, log).RegisterRoutes(api)
	handlers.NewMoodboardHandler(moodboardService, authService, log).RegisterRoutes(api)
	handlers.NewCapsuleHandler(capsuleService, authService, log).RegisterRoutes(api)
	handlers.NewAnalyticsHandler(analyticsService, authService, log).RegisterRoutes(api)

	return &App{Fiber: app, Analytics: analyticsService, close: repos.close}, nil
}

func newLogger(cfg *config.Config) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       "oro",
		Level:      hclog.LevelFromString(cfg.LogLevel),
		JSONFormat: cfg.Environment == "production",
	})
}

func loadCatalog(path string) ([]models.Product, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func newRepositories(cfg *config.Config) (*repositorySet, error) {
	if cfg.DBDriver == config.DriverMemory {
		return &repositorySet{
			users:      repositories.NewMemoryUserRepository(),
			moodboards: repositories.NewMemoryMoodboardRepository(),
			capsules:   repositories.NewMemoryCapsuleRepository(),
			clicks:     repositories.NewMemoryClickRepository(),
		}, nil
	}

	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	return &repositorySet{
		users:      repositories.NewGORMUserRepository(db),
		moodboards: repositories.NewGORMMoodboardRepository(db),
		capsules:   repositories.NewGORMCapsuleRepository(db),
		clicks:     repositories.NewGORMClickRepository(db),
		close:      sqlDB.Close,
	}, nil
}
