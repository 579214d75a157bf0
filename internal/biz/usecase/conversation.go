package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/biz/domain"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/biz/repo"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/conf"
)

// ConversationUsecase handles one inbound DM end to end: language hint,
// reply generation with the concierge policy, and delivery of the result.
type ConversationUsecase struct {
	replyRepo    repo.ReplyRepo
	deliveryRepo repo.DeliveryRepo

	// Built once at startup; the policy prompt has no per-request state.
	systemPrompt  string
	fallbackReply string
}

// NewConversationUsecase creates a new conversation usecase
func NewConversationUsecase(
	replyRepo repo.ReplyRepo,
	deliveryRepo repo.DeliveryRepo,
	systemPrompt string,
	fallbackReply string,
) *ConversationUsecase {
	return &ConversationUsecase{
		replyRepo:     replyRepo,
		deliveryRepo:  deliveryRepo,
		systemPrompt:  systemPrompt,
		fallbackReply: fallbackReply,
	}
}

// GenerateReply produces the reply outcome for an inbound event.
//
// Backend failures (timeout, transport, empty response) turn into the
// bilingual fallback reply rather than an error; the user always gets
// pointed at the booking link. An off-topic message answered with the
// no-reply sentinel becomes a suppressed outcome.
func (uc *ConversationUsecase) GenerateReply(ctx context.Context, ev domain.InboundEvent) domain.ReplyOutcome {
	hint := domain.DetectLang(ev.Text)

	raw, err := uc.replyRepo.Generate(ctx, uc.systemPrompt, ev.Text, hint)
	if err != nil {
		fmt.Printf("[Conversation] Generation failed for %s, using fallback: %v\n", ev.SenderID, err)
		return domain.Reply(uc.fallbackReply)
	}

	raw = strings.TrimSpace(raw)
	if raw == conf.NoReplyToken {
		return domain.Suppressed()
	}
	if raw == "" {
		return domain.Reply(uc.fallbackReply)
	}

	return domain.Reply(raw)
}

// HandleEvent runs the full pipeline for one event and reports whether a
// message was delivered. Delivery failure is terminal for this message:
// it is logged and not retried.
func (uc *ConversationUsecase) HandleEvent(ctx context.Context, ev domain.InboundEvent) bool {
	outcome := uc.GenerateReply(ctx, ev)
	if outcome.IsSuppressed() {
		fmt.Printf("[Conversation] Reply suppressed for %s\n", ev.SenderID)
		return false
	}

	if err := uc.deliveryRepo.SendText(ctx, ev.SenderID, outcome.Text()); err != nil {
		fmt.Printf("[Conversation] Failed to deliver to %s: %v\n", ev.SenderID, err)
		return false
	}
	return true
}
