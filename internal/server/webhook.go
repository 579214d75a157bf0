package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/biz/domain"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/biz/usecase"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/conf"
)

// WebhookServer receives Meta webhook deliveries and runs each inbound DM
// through the conversation pipeline. Requests are handled independently;
// the only shared state is the read-only configuration.
type WebhookServer struct {
	convUC  *usecase.ConversationUsecase
	webhook conf.WebhookConfig
	port    int

	server *http.Server
}

// NewWebhookServer creates a new webhook server
func NewWebhookServer(convUC *usecase.ConversationUsecase, webhook conf.WebhookConfig, port int) *WebhookServer {
	return &WebhookServer{
		convUC:  convUC,
		webhook: webhook,
		port:    port,
	}
}

// Routes returns the HTTP handler for the server
func (s *WebhookServer) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.handleWebhook)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start starts the HTTP server
func (s *WebhookServer) Start() error {
	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Routes(),
	}

	fmt.Printf("[Server] Listening on port %d\n", s.port)
	return s.server.ListenAndServe()
}

// Stop stops the HTTP server
func (s *WebhookServer) Stop() error {
	if s.server != nil {
		return s.server.Shutdown(context.Background())
	}
	return nil
}

func (s *WebhookServer) handleWebhook(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleVerify(w, r)
	case http.MethodPost:
		s.handleEvents(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// handleVerify answers the one-time subscription handshake.
func (s *WebhookServer) handleVerify(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("hub.mode")
	token := r.URL.Query().Get("hub.verify_token")
	challenge := r.URL.Query().Get("hub.challenge")

	if mode == "subscribe" && token == s.webhook.VerifyToken {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, challenge)
		return
	}

	http.Error(w, "Forbidden", http.StatusForbidden)
}

// handleEvents processes a webhook delivery. The signature covers the exact
// request bytes, so the body is read raw before any JSON parsing. Once the
// signature passes, the platform always gets a 200: per-event failures must
// not trigger redundant re-delivery from Meta.
func (s *WebhookServer) handleEvents(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if !VerifySignature(s.webhook.AppSecret, body, r.Header.Get(SignatureHeader)) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	reqID := uuid.NewString()[:8]

	// Malformed JSON is tolerated as an empty delivery.
	var payload domain.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		fmt.Printf("[Server] %s Ignoring malformed payload: %v\n", reqID, err)
	}

	events := payload.Events()
	if len(events) > 0 {
		fmt.Printf("[Server] %s Processing %d event(s)\n", reqID, len(events))
	}

	// Payload order is preserved; one failing event never aborts the rest.
	for _, ev := range events {
		s.convUC.HandleEvent(r.Context(), ev)
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "EVENT_RECEIVED")
}

func (s *WebhookServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":   true,
		"time": time.Now().Unix(),
	})
}
