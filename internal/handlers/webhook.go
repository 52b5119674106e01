package handlers

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/damantine/klinik-wa-bot/internal/models"
	"github.com/damantine/klinik-wa-bot/internal/services"
)

// WebhookHandler handles inbound message events from the Wablas gateway.
// Every POST is acknowledged with 200 regardless of internal outcome so the
// gateway never retries a delivery or marks the endpoint unhealthy.
type WebhookHandler struct {
	conversation *services.ConversationService
	botNumber    string
}

// NewWebhookHandler creates a new webhook handler. A nil conversation service
// means the gateway is not configured; events are then accepted and discarded.
func NewWebhookHandler(conversation *services.ConversationService, botNumber string) *WebhookHandler {
	return &WebhookHandler{
		conversation: conversation,
		botNumber:    botNumber,
	}
}

// HandleWebhook processes one incoming WhatsApp message event.
func (h *WebhookHandler) HandleWebhook(c *fiber.Ctx) error {
	var payload models.WablasWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("❌ Error parsing webhook payload: %v", err)
		return c.SendString("OK")
	}

	if payload.Phone == "" {
		log.Printf("❌ Invalid payload - missing phone")
		return c.SendString("OK")
	}

	raw := payload.Message
	messageType := payload.MessageType
	if messageType == "" {
		messageType = "text"
	}

	log.Printf("📱 WhatsApp message from %s (%s): %s", payload.Phone, payload.PushName, raw)

	if bool(payload.IsFromMe) {
		log.Printf("✋ Ignoring message from bot itself")
		return c.SendString("OK")
	}

	if h.botNumber != "" && payload.Phone == h.botNumber {
		log.Printf("✋ Ignoring message from bot's own number")
		return c.SendString("OK")
	}

	// Gateway delivery receipts arrive as JSON blobs in the message body.
	if strings.Contains(raw, `"status"`) {
		log.Printf("✋ Ignoring JSON status message")
		return c.SendString("OK")
	}

	if raw == "" || messageType != "text" {
		log.Printf("✋ Ignoring invalid/non-text message (%s)", messageType)
		return c.SendString("OK")
	}

	if h.conversation == nil {
		log.Printf("❌ Gateway not configured - discarding message from %s", payload.Phone)
		return c.SendString("OK")
	}

	h.conversation.HandleMessage(c.UserContext(), payload.Phone, raw)

	return c.SendString("OK")
}
