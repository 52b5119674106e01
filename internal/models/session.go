package models

import (
	"time"

	"gorm.io/gorm"
)

// Step identifies the stage a conversation session is in.
type Step string

const (
	StepChooseMethod Step = "choose_method"
	StepFillForm     Step = "fill_form"
	StepChatMode     Step = "chat_mode"
)

// Consultation delivery methods.
const (
	MetodeOffline = "Offline"
	MetodeOnline  = "Online"
)

// SessionTTL is how long an inactive session survives in the store.
// Every write resets the expiry; a session mid-flow is abandoned after this.
const SessionTTL = 30 * time.Minute

// Session stores temporary conversation state for a WhatsApp number.
type Session struct {
	Step    Step   `json:"step"`
	Layanan string `json:"layanan,omitempty"`
	Metode  string `json:"metode,omitempty"`
}

// Valid reports whether the field combination is legal for the step.
// Stores treat invalid records as corrupt and delete them on read.
func (s *Session) Valid() bool {
	switch s.Step {
	case StepChooseMethod:
		return s.Layanan != "" && s.Metode == ""
	case StepFillForm:
		return s.Layanan != "" && s.Metode != ""
	case StepChatMode:
		return true
	default:
		return false
	}
}

// SessionRecord is the PostgreSQL representation of a session.
type SessionRecord struct {
	gorm.Model
	PhoneNumber string    `json:"phone_number" gorm:"uniqueIndex"`
	Step        string    `json:"step"`
	Layanan     string    `json:"layanan"`
	Metode      string    `json:"metode"`
	ExpiresAt   time.Time `json:"expires_at"`
}
