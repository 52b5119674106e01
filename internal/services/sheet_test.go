package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/damantine/klinik-wa-bot/internal/models"
)

func TestSheetService_Forward(t *testing.T) {
	var got models.FormSubmission

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode submission: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewSheetService(server.URL)
	if !svc.Enabled() {
		t.Fatal("sink with a URL should be enabled")
	}

	sub := &models.FormSubmission{
		Timestamp: "2025-11-04T03:00:00Z",
		Nomor:     "628111",
		Nama:      "Budi",
		Unit:      "Itjen",
		Jabatan:   "Auditor",
		Waktu:     "Senin 10:00",
		Layanan:   "Pengadaan Barang/Jasa",
		Metode:    "Online",
	}
	if err := svc.Forward(sub); err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	if got != *sub {
		t.Errorf("forwarded submission = %+v, want %+v", got, *sub)
	}
}

func TestSheetService_ForwardError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewSheetService(server.URL)
	if err := svc.Forward(&models.FormSubmission{Nama: "Budi"}); err == nil {
		t.Error("expected error on sink failure")
	}
}

func TestSheetService_Disabled(t *testing.T) {
	svc := NewSheetService("")
	if svc.Enabled() {
		t.Error("sink without a URL should be disabled")
	}
}
