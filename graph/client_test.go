package graph

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendText(t *testing.T) {
	var gotPath, gotToken string
	var gotBody sendRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("access_token")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Failed to decode request body: %v", err)
		}
		w.Write([]byte(`{"recipient_id":"U1","message_id":"m1"}`))
	}))
	defer ts.Close()

	client := NewClient("page-token", "v21.0")
	client.setBaseURL(ts.URL)

	if err := client.SendText(context.Background(), "U1", "Merhaba!"); err != nil {
		t.Fatalf("SendText failed: %v", err)
	}

	if gotPath != "/v21.0/me/messages" {
		t.Errorf("Expected path /v21.0/me/messages, got %s", gotPath)
	}
	if gotToken != "page-token" {
		t.Errorf("Expected access token in query, got %q", gotToken)
	}
	if gotBody.Recipient.ID != "U1" {
		t.Errorf("Expected recipient U1, got %s", gotBody.Recipient.ID)
	}
	if gotBody.Message.Text != "Merhaba!" {
		t.Errorf("Expected message text, got %s", gotBody.Message.Text)
	}
	if gotBody.MessagingType != "RESPONSE" {
		t.Errorf("Expected messaging_type RESPONSE, got %s", gotBody.MessagingType)
	}
}

func TestSendText_NonSuccessStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))
	defer ts.Close()

	client := NewClient("bad-token", "v21.0")
	client.setBaseURL(ts.URL)

	if err := client.SendText(context.Background(), "U1", "hi"); err == nil {
		t.Error("Expected error for non-success status")
	}
}

func TestSendText_NoToken(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	client := NewClient("", "v21.0")
	client.setBaseURL(ts.URL)

	if err := client.SendText(context.Background(), "U1", "hi"); err == nil {
		t.Error("Expected error when no token configured")
	}
	if called {
		t.Error("Expected no network call without a token")
	}
}

func TestNewClient_DefaultVersion(t *testing.T) {
	client := NewClient("token", "")
	if client.apiVersion != "v21.0" {
		t.Errorf("Expected default API version v21.0, got %s", client.apiVersion)
	}
}
