package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

// FormSink receives completed form submissions. A disabled sink is a valid
// configuration meaning "skip forwarding".
type FormSink interface {
	Enabled() bool
	Forward(sub *models.FormSubmission) error
}

// SheetService forwards form submissions to the spreadsheet webhook.
type SheetService struct {
	webhookURL string
	client     *http.Client
}

// NewSheetService creates a new spreadsheet forwarder. An empty URL disables it.
func NewSheetService(webhookURL string) *SheetService {
	return &SheetService{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether a webhook URL is configured.
func (s *SheetService) Enabled() bool {
	return s.webhookURL != ""
}

// Forward posts the submission to the spreadsheet webhook.
func (s *SheetService) Forward(sub *models.FormSubmission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to marshal form submission: %w", err)
	}

	resp, err := s.client.Post(s.webhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to forward form submission: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("spreadsheet webhook returned status %d: %s", resp.StatusCode, detail)
	}

	return nil
}
