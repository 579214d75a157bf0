package domain

// ReplyOutcome is the result of generating a reply: either text to deliver
// or a decision to stay silent. The suppression sentinel returned by the
// model is parsed into this type at the generation boundary and never
// travels further through the pipeline.
type ReplyOutcome struct {
	suppressed bool
	text       string
}

// Suppressed returns an outcome that sends nothing.
func Suppressed() ReplyOutcome {
	return ReplyOutcome{suppressed: true}
}

// Reply returns an outcome carrying text to deliver.
func Reply(text string) ReplyOutcome {
	return ReplyOutcome{text: text}
}

// IsSuppressed reports whether no message should be sent.
func (o ReplyOutcome) IsSuppressed() bool {
	return o.suppressed
}

// Text returns the reply text. Empty when the outcome is suppressed.
func (o ReplyOutcome) Text() string {
	return o.text
}
