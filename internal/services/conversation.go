package services

import (
	"context"
	"log"
	"time"

	"github.com/damantine/klinik-wa-bot/internal/models"
	"github.com/damantine/klinik-wa-bot/internal/storage"
)

// ConversationService drives the consultation flow: it classifies each inbound
// message against the caller's session, then performs the resulting reply,
// session write and form forwarding. No error here ever fails the webhook;
// store and send failures are logged and the flow degrades gracefully.
type ConversationService struct {
	store  storage.SessionStore
	sender Sender
	sink   FormSink
}

// NewConversationService creates a new conversation service.
func NewConversationService(store storage.SessionStore, sender Sender, sink FormSink) *ConversationService {
	return &ConversationService{
		store:  store,
		sender: sender,
		sink:   sink,
	}
}

// HandleMessage processes one inbound message from a phone number.
func (s *ConversationService) HandleMessage(ctx context.Context, phone, raw string) {
	session, err := s.store.Get(ctx, phone)
	if err != nil {
		// Fail open: a broken store must not block the reply pipeline.
		log.Printf("❌ Error getting session for %s: %v", phone, err)
		session = nil
	}

	intent := Classify(session, raw)

	switch intent.Kind {
	case IntentReset:
		s.clearSession(ctx, phone)
		s.send(phone, WelcomeMessage())

	case IntentChooseMethod:
		next := &models.Session{
			Step:    models.StepFillForm,
			Layanan: session.Layanan,
			Metode:  intent.Metode,
		}
		s.saveSession(ctx, phone, next)
		s.send(phone, FormInstructionsMessage(intent.Metode))

	case IntentFormSubmit:
		sub := intent.Form
		sub.Timestamp = time.Now().UTC().Format(time.RFC3339)
		sub.Nomor = phone
		sub.Layanan = session.Layanan
		sub.Metode = session.Metode

		if s.sink != nil && s.sink.Enabled() {
			if err := s.sink.Forward(sub); err != nil {
				// Session is kept so the user can resend without restarting.
				log.Printf("❌ Error forwarding form for %s: %v", phone, err)
				s.send(phone, FormFailureMessage())
				return
			}
			log.Printf("✅ Form data forwarded for %s", phone)
		}

		s.send(phone, FormSuccessMessage(sub))
		s.clearSession(ctx, phone)

	case IntentFormInvalid:
		s.send(phone, FormFailureMessage())

	case IntentChatRelay:
		// Relayed to the team channel outside this system; no reply.
		log.Printf("💬 Chat from %s: %s", phone, raw)

	case IntentSelectService:
		s.saveSession(ctx, phone, &models.Session{
			Step:    models.StepChooseMethod,
			Layanan: intent.Layanan,
		})
		s.send(phone, MethodPromptMessage(intent.Layanan))

	case IntentEnterChat:
		s.saveSession(ctx, phone, &models.Session{Step: models.StepChatMode})
		s.send(phone, ChatWelcomeMessage())

	default:
		log.Printf("❓ Unknown command from %s: %q", phone, raw)
		s.send(phone, UnknownCommandMessage())
	}
}

func (s *ConversationService) saveSession(ctx context.Context, phone string, session *models.Session) {
	if err := s.store.Set(ctx, phone, session); err != nil {
		log.Printf("❌ Failed to save session for %s: %v", phone, err)
	}
}

func (s *ConversationService) clearSession(ctx context.Context, phone string) {
	if err := s.store.Delete(ctx, phone); err != nil {
		log.Printf("❌ Failed to clear session for %s: %v", phone, err)
	}
}

func (s *ConversationService) send(phone, text string) {
	if err := s.sender.SendMessage(phone, text); err != nil {
		log.Printf("❌ Error sending message to %s: %v", phone, err)
	}
}
