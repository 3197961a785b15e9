package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"arabyprompts/internal/config"
	"arabyprompts/internal/handlers"
	"arabyprompts/internal/middleware"
	"arabyprompts/internal/repositories"
	"arabyprompts/internal/services"
	"arabyprompts/pkg/ai"
	"arabyprompts/pkg/rabbitmq"
)

// application bundles the HTTP app with the resources it owns.
type application struct {
	fiber    *fiber.App
	store    *repositories.EntityStore
	sessions *services.SessionService
	mq       *rabbitmq.Client
}

// newApp wires the store, services and handlers. RabbitMQ and Gemini are
// only used when configured.
func newApp(cfg config.Config) (*application, error) {
	store := repositories.NewEntityStore()

	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		mqClient = client
		services.PublishChanges(store, mqClient)
		if err := mqClient.ConsumeEvents(services.ChangeRoutingPrefix+"#", rabbitmq.LogEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL not set, store change events are not published")
	}

	seedStore(store, time.Now().UTC())

	var completer services.Completer
	if cfg.GeminiAPIKey != "" {
		client, err := ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, ai.WithBaseURL(cfg.GeminiBaseURL))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		completer = client
	} else {
		log.Println("GEMINI_API_KEY not set, generator returns fallback texts")
	}

	if cfg.UsesDefaultJWTSecret() {
		log.Println("WARNING: JWT_SECRET not set, session tokens are signed with the default secret")
	}

	// --- Initialize Services ---
	sessionService := services.NewSessionService(store, cfg.JWTSecret, cfg.SessionTTL)
	communityService := services.NewCommunityService(store)
	adminService := services.NewAdminService(store, services.NewConfirmations(cfg.ConfirmTTL))
	generatorService := services.NewGeneratorService(completer, store)

	// --- Initialize Handlers ---
	publicHandler := handlers.NewPublicHandler(communityService)
	sessionHandler := handlers.NewSessionHandler(sessionService, cfg.PublicEntry)
	generatorHandler := handlers.NewGeneratorHandler(generatorService)
	adminHandler := handlers.NewAdminHandler(adminService)

	app := fiber.New(fiber.Config{BodyLimit: 10 << 20})
	app.Use(logger.New())
	app.Use(middleware.Session(sessionService))

	apiV1 := app.Group("/api/v1")
	publicHandler.RegisterRoutes(apiV1)
	sessionHandler.RegisterRoutes(apiV1)
	generatorHandler.RegisterRoutes(apiV1)

	adminRoutes := apiV1.Group("/admin", middleware.AdminRequired(cfg.PublicEntry))
	adminHandler.RegisterRoutes(adminRoutes)

	app.Get("/health", func(c *fiber.Ctx) error {
		mqStatus := "disabled"
		if mqClient != nil {
			mqStatus = "connected"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"rabbitmq": mqStatus,
		})
	})

	return &application{
		fiber:    app,
		store:    store,
		sessions: sessionService,
		mq:       mqClient,
	}, nil
}

// Close releases the resources owned by the application.
func (a *application) Close() error {
	if err := a.fiber.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	if a.mq != nil {
		return a.mq.Close()
	}
	return nil
}
