package data

import (
	"context"

	"github.com/rinnatamussina-hub/ig-chatgpt-bot/graph"
	"github.com/rinnatamussina-hub/ig-chatgpt-bot/internal/biz/repo"
)

// graphRepo implements the delivery repository over the Send API
type graphRepo struct {
	client *graph.Client
}

// NewGraphRepo creates a delivery repository backed by the Graph client
func NewGraphRepo(client *graph.Client) repo.DeliveryRepo {
	return &graphRepo{client: client}
}

// SendText delivers a text reply to the given recipient
func (r *graphRepo) SendText(ctx context.Context, recipientID, text string) error {
	return r.client.SendText(ctx, recipientID, text)
}
