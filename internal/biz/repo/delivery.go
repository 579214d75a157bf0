package repo

import "context"

// DeliveryRepo is the outbound message delivery interface.
type DeliveryRepo interface {
	// SendText delivers a text reply to a user. One attempt, no retry.
	SendText(ctx context.Context, recipientID, text string) error
}
