package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// ResendMailer sends email via the Resend API
type ResendMailer struct {
	client      *resend.Client
	fromAddress string
	log         zerolog.Logger
}

// NewResendMailer creates a new Resend mailer
func NewResendMailer(apiKey, from string) *ResendMailer {
	if apiKey == "" {
		return nil
	}
	return &ResendMailer{
		client:      resend.NewClient(apiKey),
		fromAddress: from,
		log:         zerolog.New(os.Stdout).With().Timestamp().Str("component", "notify").Logger(),
	}
}

// IsConfigured returns true if the mailer has server-side config
func (r *ResendMailer) IsConfigured() bool {
	return r.client != nil && r.fromAddress != ""
}

// Send delivers one message through Resend.
func (r *ResendMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipient specified")
	}

	params := &resend.SendEmailRequest{
		From:    r.fromAddress,
		To:      msg.To,
		Cc:      msg.Cc,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	}

	_, err := r.client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("resend send failed: %w", err)
	}

	r.log.Info().Strs("to", msg.To).Str("subject", msg.Subject).Msg("Email sent")
	return nil
}

// Name returns the mailer name
func (r *ResendMailer) Name() string {
	return "resend"
}
