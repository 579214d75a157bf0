package repo

import (
	"context"

	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/biz/domain"
)

// ReplyRepo is the generation backend interface.
type ReplyRepo interface {
	// Generate sends the user text to the model and returns its raw reply.
	// systemPrompt and userText are passed as separate conversation turns.
	// langHint is advisory; the model decides the reply language itself.
	Generate(ctx context.Context, systemPrompt, userText string, langHint domain.LangHint) (string, error)
}
