package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/bodhify/go-site-backend/internal/config"
)

// ResendChannel delivers the acknowledgment email through the Resend API.
// The recipient is always the submitter's own address.
type ResendChannel struct {
	cfg    config.ResendConfig
	client *resend.Client
}

// NewResendChannel builds the acknowledgment channel from config. The
// underlying client is only constructed when an API key is present.
func NewResendChannel(cfg config.ResendConfig) *ResendChannel {
	ch := &ResendChannel{cfg: cfg}
	if cfg.APIKey != "" {
		ch.client = resend.NewClient(cfg.APIKey)
	}
	return ch
}

// Name implements Channel.
func (c *ResendChannel) Name() string { return "resend-ack" }

// Send renders the thank-you email and delivers it to the submitter.
// It fails without calling out when the channel is unconfigured.
func (c *ResendChannel) Send(ctx context.Context, sub Submission) error {
	if c.client == nil {
		return errors.New("resend channel not configured")
	}

	body, err := renderAckBody(sub)
	if err != nil {
		return fmt.Errorf("render ack body: %w", err)
	}

	_, err = c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.cfg.From,
		To:      []string{sub.Email},
		Subject: AckSubject,
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("resend send: %w", err)
	}
	return nil
}
