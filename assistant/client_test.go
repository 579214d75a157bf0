package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestChat(t *testing.T) {
	var gotReq struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		Temperature float64 `json:"temperature"`
		MaxTokens   int     `json:"max_tokens"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Merhaba! Randevu için link."}}]}`))
	}))
	defer ts.Close()

	client := NewClient("sk-test", "gpt-4o-mini", ts.URL+"/v1", 5*time.Second)

	reply, err := client.Chat(context.Background(), "system prompt", "Fiyatlar nedir?")
	if err != nil {
		t.Fatalf("Chat failed: %v", err)
	}
	if reply != "Merhaba! Randevu için link." {
		t.Errorf("Unexpected reply: %q", reply)
	}

	if gotReq.Model != "gpt-4o-mini" {
		t.Errorf("Expected model gpt-4o-mini, got %s", gotReq.Model)
	}
	if len(gotReq.Messages) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(gotReq.Messages))
	}
	if gotReq.Messages[0].Role != "system" || gotReq.Messages[0].Content != "system prompt" {
		t.Errorf("Expected separate system turn, got %+v", gotReq.Messages[0])
	}
	if gotReq.Messages[1].Role != "user" || gotReq.Messages[1].Content != "Fiyatlar nedir?" {
		t.Errorf("Expected separate user turn, got %+v", gotReq.Messages[1])
	}
	if gotReq.MaxTokens != 300 {
		t.Errorf("Expected max_tokens 300, got %d", gotReq.MaxTokens)
	}
}

func TestChat_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"overloaded"}}`))
	}))
	defer ts.Close()

	client := NewClient("sk-test", "", ts.URL+"/v1", 5*time.Second)

	if _, err := client.Chat(context.Background(), "system", "user"); err == nil {
		t.Error("Expected error for backend failure")
	}
}

func TestChat_NoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer ts.Close()

	client := NewClient("sk-test", "", ts.URL+"/v1", 5*time.Second)

	if _, err := client.Chat(context.Background(), "system", "user"); err == nil {
		t.Error("Expected error for empty choices")
	}
}

func TestChat_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer ts.Close()

	client := NewClient("sk-test", "", ts.URL+"/v1", 50*time.Millisecond)

	if _, err := client.Chat(context.Background(), "system", "user"); err == nil {
		t.Error("Expected timeout error")
	}
}
