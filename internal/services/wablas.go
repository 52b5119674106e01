package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Sender delivers a text reply to a WhatsApp number. Delivery is best-effort,
// at most once; callers log failures and never retry.
type Sender interface {
	SendMessage(to, message string) error
}

// DefaultWablasBaseURL is the gateway endpoint used when none is configured.
const DefaultWablasBaseURL = "https://tegal.wablas.com/api/v2"

// WablasService sends WhatsApp messages through the Wablas HTTP gateway.
type WablasService struct {
	baseURL   string
	authToken string
	client    *http.Client
}

// NewWablasService creates a new Wablas sender. The gateway authenticates with
// the API key and secret key joined by a dot.
func NewWablasService(baseURL, apiKey, secretKey string) (*WablasService, error) {
	if apiKey == "" || secretKey == "" {
		return nil, fmt.Errorf("missing Wablas credentials in environment variables")
	}
	if baseURL == "" {
		baseURL = DefaultWablasBaseURL
	}

	return &WablasService{
		baseURL:   baseURL,
		authToken: apiKey + "." + secretKey,
		client:    &http.Client{Timeout: 15 * time.Second},
	}, nil
}

type wablasMessage struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type wablasSendRequest struct {
	Data []wablasMessage `json:"data"`
}

// SendMessage sends a WhatsApp text message via Wablas.
func (w *WablasService) SendMessage(to, message string) error {
	body, err := json.Marshal(wablasSendRequest{
		Data: []wablasMessage{{Phone: to, Message: message}},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, w.baseURL+"/send-message", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build send request: %w", err)
	}
	req.Header.Set("Authorization", w.authToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send message to %s: %w", to, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("wablas returned status %d: %s", resp.StatusCode, detail)
	}

	log.Printf("✅ WhatsApp message sent to %s", to)
	return nil
}
