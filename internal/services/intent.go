package services

import (
	"strings"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

// IntentKind classifies what an inbound message means given the session state.
type IntentKind int

const (
	IntentUnknown IntentKind = iota
	IntentReset
	IntentChooseMethod
	IntentFormSubmit
	IntentFormInvalid
	IntentChatRelay
	IntentSelectService
	IntentEnterChat
)

// Intent is the classified outcome for one inbound message.
type Intent struct {
	Kind    IntentKind
	Layanan string                 // set for IntentSelectService
	Metode  string                 // set for IntentChooseMethod
	Form    *models.FormSubmission // set for IntentFormSubmit
}

// greetings are reset keywords honored from any state, including chat mode.
var greetings = map[string]bool{
	"hai":           true,
	"halo":          true,
	"hallo":         true,
	"selamat pagi":  true,
	"pagi":          true,
	"selamat siang": true,
	"siang":         true,
	"selamat sore":  true,
	"sore":          true,
	"selamat malam": true,
	"malam":         true,
	"menu":          true,
	"mulai":         true,
	"start":         true,
	"batal":         true,
}

// layananKeywords lets users pick a service by name instead of digit.
var layananKeywords = []struct {
	layanan string
	words   []string
}{
	{LayananList["1"], []string{"tata kelola", "risiko"}},
	{LayananList["2"], []string{"pengadaan"}},
	{LayananList["3"], []string{"keuangan", "bmn"}},
	{LayananList["4"], []string{"kinerja", "kepegawaian"}},
}

// Classify maps a raw message and the current session to an intent. Rules are
// evaluated in priority order and the first match wins; greetings always win
// so the user can escape back to the menu from anywhere.
func Classify(session *models.Session, raw string) Intent {
	msg := strings.ToLower(strings.TrimSpace(raw))

	if greetings[msg] {
		return Intent{Kind: IntentReset}
	}

	if session != nil {
		switch session.Step {
		case models.StepChooseMethod:
			switch msg {
			case "1":
				return Intent{Kind: IntentChooseMethod, Metode: models.MetodeOffline}
			case "2":
				return Intent{Kind: IntentChooseMethod, Metode: models.MetodeOnline}
			}

		case models.StepFillForm:
			if form, ok := ParseForm(raw); ok {
				return Intent{Kind: IntentFormSubmit, Form: form}
			}
			return Intent{Kind: IntentFormInvalid}

		case models.StepChatMode:
			// "menu" is already handled by the greeting table above.
			return Intent{Kind: IntentChatRelay}
		}
	}

	if session == nil {
		if layanan, ok := matchLayanan(msg); ok {
			return Intent{Kind: IntentSelectService, Layanan: layanan}
		}
		if msg == "5" || strings.Contains(msg, "chat") {
			return Intent{Kind: IntentEnterChat}
		}
	}

	return Intent{Kind: IntentUnknown}
}

// matchLayanan resolves a service selection by digit first, then by keyword.
func matchLayanan(msg string) (string, bool) {
	if layanan, ok := LayananList[msg]; ok {
		return layanan, true
	}
	for _, entry := range layananKeywords {
		for _, word := range entry.words {
			if strings.Contains(msg, word) {
				return entry.layanan, true
			}
		}
	}
	return "", false
}
