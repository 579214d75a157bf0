package domain

// WebhookPayload is the top-level event body Meta delivers to the webhook.
// Instagram and Messenger share the entry -> messaging shape.
type WebhookPayload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry holds the messaging events for a single page.
type Entry struct {
	ID        string      `json:"id"`
	Time      int64       `json:"time"`
	Messaging []Messaging `json:"messaging"`
}

// Messaging is one messaging event. Only text messages carry a non-nil
// Message with text; echoes, delivery receipts, read receipts and
// attachment-only messages are represented but never normalized.
type Messaging struct {
	Sender    *Principal `json:"sender,omitempty"`
	Recipient *Principal `json:"recipient,omitempty"`
	Timestamp int64      `json:"timestamp,omitempty"`
	Message   *Message   `json:"message,omitempty"`
	Delivery  *Delivery  `json:"delivery,omitempty"`
	Read      *Read      `json:"read,omitempty"`
}

// Principal is a sender or recipient, identified by a page-scoped ID.
type Principal struct {
	ID string `json:"id"`
}

// Message is the message content of a messaging event.
type Message struct {
	MID    string `json:"mid,omitempty"`
	Text   string `json:"text,omitempty"`
	IsEcho bool   `json:"is_echo,omitempty"`
}

// Delivery is a delivery receipt. Carried only so the schema is explicit;
// receipts are skipped during normalization.
type Delivery struct {
	MIDs      []string `json:"mids,omitempty"`
	Watermark int64    `json:"watermark,omitempty"`
}

// Read is a read receipt.
type Read struct {
	Watermark int64 `json:"watermark,omitempty"`
}

// InboundEvent is one replyable user message extracted from the payload.
type InboundEvent struct {
	SenderID string
	Text     string
}

// IsUserText reports whether this messaging event is an actual text message
// from a user, as opposed to an echo, receipt or attachment-only message.
func (m *Messaging) IsUserText() bool {
	if m.Sender == nil || m.Sender.ID == "" {
		return false
	}
	if m.Message == nil || m.Message.Text == "" {
		return false
	}
	if m.Message.IsEcho {
		return false
	}
	return m.Delivery == nil && m.Read == nil
}

// Events flattens entry[*].messaging[*] into the list of replyable events,
// dropping anything that is not a user text message. An empty or missing
// entry list yields an empty slice, never an error.
func (p *WebhookPayload) Events() []InboundEvent {
	var events []InboundEvent
	for _, entry := range p.Entry {
		for i := range entry.Messaging {
			m := &entry.Messaging[i]
			if !m.IsUserText() {
				continue
			}
			events = append(events, InboundEvent{
				SenderID: m.Sender.ID,
				Text:     m.Message.Text,
			})
		}
	}
	return events
}
