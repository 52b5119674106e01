package services

import (
	"testing"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

func TestClassify_ResetFromAnyState(t *testing.T) {
	sessions := map[string]*models.Session{
		"none":          nil,
		"choose_method": {Step: models.StepChooseMethod, Layanan: LayananList["1"]},
		"fill_form":     {Step: models.StepFillForm, Layanan: LayananList["2"], Metode: models.MetodeOnline},
		"chat_mode":     {Step: models.StepChatMode},
	}
	keywords := []string{"menu", "MENU", "mulai", "start", "batal", "halo", "Selamat Pagi", "  hai  "}

	for name, session := range sessions {
		for _, keyword := range keywords {
			intent := Classify(session, keyword)
			if intent.Kind != IntentReset {
				t.Errorf("state %s, keyword %q: expected IntentReset, got %v", name, keyword, intent.Kind)
			}
		}
	}
}

func TestClassify_MethodSelection(t *testing.T) {
	session := &models.Session{Step: models.StepChooseMethod, Layanan: LayananList["2"]}

	intent := Classify(session, "1")
	if intent.Kind != IntentChooseMethod || intent.Metode != models.MetodeOffline {
		t.Errorf("expected Offline method selection, got %+v", intent)
	}

	intent = Classify(session, "2")
	if intent.Kind != IntentChooseMethod || intent.Metode != models.MetodeOnline {
		t.Errorf("expected Online method selection, got %+v", intent)
	}

	// Anything else in choose_method falls through to the fallback rule.
	for _, msg := range []string{"3", "offline", "ya"} {
		intent = Classify(session, msg)
		if intent.Kind != IntentUnknown {
			t.Errorf("input %q: expected IntentUnknown, got %v", msg, intent.Kind)
		}
	}
}

func TestClassify_FormFill(t *testing.T) {
	session := &models.Session{Step: models.StepFillForm, Layanan: LayananList["1"], Metode: models.MetodeOffline}

	intent := Classify(session, "Nama: Budi\nUnit: Itjen\nJabatan: Auditor\nReferensi Hari/Jam: Senin 10:00")
	if intent.Kind != IntentFormSubmit {
		t.Fatalf("expected IntentFormSubmit, got %v", intent.Kind)
	}
	if intent.Form.Nama != "Budi" || intent.Form.Waktu != "Senin 10:00" {
		t.Errorf("unexpected parsed form: %+v", intent.Form)
	}

	intent = Classify(session, "Nama: Budi\nJabatan: Auditor")
	if intent.Kind != IntentFormInvalid {
		t.Errorf("expected IntentFormInvalid for incomplete form, got %v", intent.Kind)
	}
}

func TestClassify_ChatMode(t *testing.T) {
	session := &models.Session{Step: models.StepChatMode}

	intent := Classify(session, "apakah ada jadwal kosong besok?")
	if intent.Kind != IntentChatRelay {
		t.Errorf("expected IntentChatRelay, got %v", intent.Kind)
	}

	// "menu" escapes chat mode through the reset rule.
	intent = Classify(session, "menu")
	if intent.Kind != IntentReset {
		t.Errorf("expected IntentReset for menu in chat mode, got %v", intent.Kind)
	}
}

func TestClassify_ServiceSelection(t *testing.T) {
	tests := []struct {
		input   string
		layanan string
	}{
		{"1", LayananList["1"]},
		{"2", LayananList["2"]},
		{"3", LayananList["3"]},
		{"4", LayananList["4"]},
		{"mau konsultasi pengadaan", LayananList["2"]},
		{"soal manajemen RISIKO", LayananList["1"]},
		{"pengelolaan bmn", LayananList["3"]},
		{"kepegawaian", LayananList["4"]},
	}

	for _, tc := range tests {
		intent := Classify(nil, tc.input)
		if intent.Kind != IntentSelectService {
			t.Errorf("input %q: expected IntentSelectService, got %v", tc.input, intent.Kind)
			continue
		}
		if intent.Layanan != tc.layanan {
			t.Errorf("input %q: expected layanan %q, got %q", tc.input, tc.layanan, intent.Layanan)
		}
	}
}

func TestClassify_ServiceSelectionRequiresNoSession(t *testing.T) {
	session := &models.Session{Step: models.StepChooseMethod, Layanan: LayananList["1"]}
	intent := Classify(session, "4")
	if intent.Kind == IntentSelectService {
		t.Error("service selection must not fire while a session is active")
	}
}

func TestClassify_ChatEntry(t *testing.T) {
	for _, msg := range []string{"5", "chat", "mau chat dengan tim"} {
		intent := Classify(nil, msg)
		if intent.Kind != IntentEnterChat {
			t.Errorf("input %q: expected IntentEnterChat, got %v", msg, intent.Kind)
		}
	}
}

func TestClassify_Fallback(t *testing.T) {
	intent := Classify(nil, "9")
	if intent.Kind != IntentUnknown {
		t.Errorf("expected IntentUnknown, got %v", intent.Kind)
	}
}
