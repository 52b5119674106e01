package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/damantine/klinik-wa-bot/internal/handlers"
)

// SetupRoutes configures all webhook routes
func SetupRoutes(app *fiber.App, webhook *handlers.WebhookHandler) {
	health := handlers.NewHealthHandler()

	// Gateway status probes hit GET on the webhook path itself.
	app.Get("/", health.Check)
	app.Get("/health", health.Check)

	app.Post("/", webhook.HandleWebhook)
	app.Post("/webhook/whatsapp", webhook.HandleWebhook)
}
