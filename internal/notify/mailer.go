package notify

import "context"

// Message is one outbound email.
type Message struct {
	To      []string
	Cc      []string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer sends outbound email.
type Mailer interface {
	// Send delivers one message.
	Send(ctx context.Context, msg Message) error
	// Name returns the mailer type name (for logging)
	Name() string
	// IsConfigured returns true if the mailer has server-side config
	IsConfigured() bool
}
