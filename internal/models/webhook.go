package models

import "strings"

// WablasWebhookPayload represents an incoming message event from the Wablas gateway.
type WablasWebhookPayload struct {
	Phone       string   `json:"phone"`
	Message     string   `json:"message"`
	MessageType string   `json:"messageType"`
	IsFromMe    FlexBool `json:"isFromMe"`
	PushName    string   `json:"pushName"`
}

// FlexBool decodes boolean fields that the gateway delivers inconsistently
// as true, "true", 1 or "1".
type FlexBool bool

// UnmarshalJSON implements json.Unmarshaler.
func (b *FlexBool) UnmarshalJSON(data []byte) error {
	switch strings.ToLower(strings.Trim(string(data), `"`)) {
	case "true", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}
