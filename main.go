package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/damantine/klinik-wa-bot/database"
	"github.com/damantine/klinik-wa-bot/internal/config"
	"github.com/damantine/klinik-wa-bot/internal/handlers"
	"github.com/damantine/klinik-wa-bot/internal/jobs"
	"github.com/damantine/klinik-wa-bot/internal/models"
	"github.com/damantine/klinik-wa-bot/internal/routes"
	"github.com/damantine/klinik-wa-bot/internal/services"
	"github.com/damantine/klinik-wa-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize session store
	var store storage.SessionStore
	var purger storage.Purger

	switch cfg.SessionBackend {
	case "redis":
		log.Println("📦 Connecting to Redis session store...")
		redisStore := storage.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err := redisStore.Ping(context.Background()); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
		store = redisStore
		log.Println("✅ Using Redis session storage")

	case "postgres":
		log.Println("📦 Connecting to PostgreSQL session store...")
		database.Connect()
		if err := database.DB.AutoMigrate(&models.SessionRecord{}); err != nil {
			log.Fatal("Failed to migrate database:", err)
		}
		databaseStore := storage.NewDatabaseStore(database.DB)
		store = databaseStore
		purger = databaseStore
		log.Println("✅ Using PostgreSQL session storage")

	default:
		log.Println("⚠️  Using in-memory session storage (not for production!)")
		memoryStore := storage.NewMemoryStore()
		store = memoryStore
		purger = memoryStore
	}

	// Initialize message sender
	var sender services.Sender
	switch cfg.Sender {
	case "twilio":
		twilioService, err := services.NewTwilioService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom)
		if err != nil {
			log.Printf("⚠️  Twilio sender not initialized: %v", err)
		} else {
			sender = twilioService
			log.Println("✅ Twilio sender initialized")
		}
	default:
		wablasService, err := services.NewWablasService(cfg.WablasBaseURL, cfg.WablasAPIKey, cfg.WablasSecretKey)
		if err != nil {
			log.Printf("⚠️  Wablas sender not initialized: %v", err)
		} else {
			sender = wablasService
			log.Println("✅ Wablas sender initialized")
		}
	}

	// Initialize form sink
	sink := services.NewSheetService(cfg.SpreadsheetWebhook)
	if sink.Enabled() {
		log.Println("✅ Spreadsheet forwarding enabled")
	} else {
		log.Println("⚠️  SPREADSHEET_WEBHOOK not set - form forwarding disabled")
	}

	// Without a sender the bot cannot reply; inbound events are then
	// accepted and discarded by the webhook handler.
	var conversation *services.ConversationService
	if sender != nil {
		conversation = services.NewConversationService(store, sender, sink)
	} else {
		log.Println("⚠️  Gateway not configured - inbound messages will be discarded")
	}

	// Start session cleanup for backends without native expiry
	var cleanup *jobs.CleanupJob
	if purger != nil {
		cleanup = jobs.NewCleanupJob(purger)
		cleanup.Start()
	}

	// Create fiber app
	app := fiber.New(fiber.Config{
		AppName: "Klinik Konsultasi WA Bot v1.0.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST",
	}))

	// Setup routes
	webhook := handlers.NewWebhookHandler(conversation, cfg.WablasPhoneNumber)
	routes.SetupRoutes(app, webhook)

	// Handle graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("\n🛑 Gracefully shutting down...")
		if cleanup != nil {
			cleanup.Stop()
		}
		_ = app.Shutdown()
	}()

	// Start server
	log.Println("========================================")
	log.Printf("🚀 Klinik Konsultasi WA Bot starting on port %s", cfg.Port)
	log.Printf("📊 Session backend: %s", cfg.SessionBackend)
	log.Printf("📱 Sender: %s (configured: %v)", cfg.Sender, sender != nil)
	log.Printf("📋 Spreadsheet forwarding: %v", sink.Enabled())
	log.Println("========================================")

	log.Fatal(app.Listen(":" + cfg.Port))
}
