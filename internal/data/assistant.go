package data

import (
	"context"

	"github.com/rinnatamussina-hub/ig-chatgpt-bot/assistant"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/biz/domain"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/biz/repo"
)

// assistantRepo implements the reply generation repository
type assistantRepo struct {
	client *assistant.Client
}

// NewAssistantRepo creates a reply repository backed by the OpenAI client
func NewAssistantRepo(client *assistant.Client) repo.ReplyRepo {
	return &assistantRepo{client: client}
}

// Generate calls the chat completion backend. The language hint stays
// advisory: the policy prompt already instructs the model how to pick the
// reply language, so the hint is not injected into the conversation.
func (r *assistantRepo) Generate(ctx context.Context, systemPrompt, userText string, _ domain.LangHint) (string, error) {
	return r.client.Chat(ctx, systemPrompt, userText)
}
