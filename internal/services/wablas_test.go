package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWablasService_SendMessage(t *testing.T) {
	var gotAuth string
	var gotBody wablasSendRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/send-message" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc, err := NewWablasService(server.URL, "api-key", "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.SendMessage("628111", "halo"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if gotAuth != "api-key.secret-key" {
		t.Errorf("Authorization = %q, want key.secret", gotAuth)
	}
	if len(gotBody.Data) != 1 || gotBody.Data[0].Phone != "628111" || gotBody.Data[0].Message != "halo" {
		t.Errorf("unexpected payload: %+v", gotBody)
	}
}

func TestWablasService_SendMessageGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid token", http.StatusUnauthorized)
	}))
	defer server.Close()

	svc, err := NewWablasService(server.URL, "api-key", "secret-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.SendMessage("628111", "halo"); err == nil {
		t.Error("expected error on gateway failure")
	}
}

func TestNewWablasService_MissingCredentials(t *testing.T) {
	if _, err := NewWablasService("", "", "secret"); err == nil {
		t.Error("expected error for missing API key")
	}
	if _, err := NewWablasService("", "key", ""); err == nil {
		t.Error("expected error for missing secret key")
	}
}

func TestNewWablasService_DefaultBaseURL(t *testing.T) {
	svc, err := NewWablasService("", "key", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.baseURL != DefaultWablasBaseURL {
		t.Errorf("baseURL = %q, want default", svc.baseURL)
	}
}
