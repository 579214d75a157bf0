package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://graph.facebook.com"

// Client sends messages through the Messenger Send API, which also serves
// DMs for Instagram professional accounts.
type Client struct {
	accessToken string
	apiVersion  string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a new Graph API client.
func NewClient(accessToken, apiVersion string) *Client {
	if apiVersion == "" {
		apiVersion = "v21.0"
	}
	return &Client{
		accessToken: accessToken,
		apiVersion:  apiVersion,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// setBaseURL overrides the API host for tests.
func (c *Client) setBaseURL(u string) {
	c.baseURL = u
}

type sendRequest struct {
	Recipient     recipient `json:"recipient"`
	Message       message   `json:"message"`
	MessagingType string    `json:"messaging_type"`
}

type recipient struct {
	ID string `json:"id"`
}

type message struct {
	Text string `json:"text"`
}

// SendText sends a text reply to a user via the Send API. Exactly one POST,
// no retry; a missing access token fails without a network call.
func (c *Client) SendText(ctx context.Context, recipientID, text string) error {
	if c.accessToken == "" {
		return fmt.Errorf("no access token configured")
	}

	payload := sendRequest{
		Recipient:     recipient{ID: recipientID},
		Message:       message{Text: text},
		MessagingType: "RESPONSE",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal send payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/me/messages?access_token=%s",
		c.baseURL, c.apiVersion, url.QueryEscape(c.accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send message failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("send message error: %d %s", resp.StatusCode, string(respBody))
	}

	fmt.Printf("[Graph] Message sent to %s\n", recipientID)
	return nil
}
