package email

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/bodhify/go-site-backend/internal/config"
)

// SMTPChannel delivers the operator notification over an authenticated SMTP
// relay (the original deployment used a Gmail app password on port 465).
// Each Send dials a fresh session; submission volume on a brochure site does
// not justify a held-open connection.
type SMTPChannel struct {
	cfg config.SMTPConfig
}

// NewSMTPChannel builds the admin-notification channel from config.
func NewSMTPChannel(cfg config.SMTPConfig) *SMTPChannel {
	return &SMTPChannel{cfg: cfg}
}

// Name implements Channel.
func (c *SMTPChannel) Name() string { return "smtp-admin" }

// Send renders the admin notification and delivers it to the fixed operator
// recipient list. It fails without dialing when the channel is unconfigured.
func (c *SMTPChannel) Send(ctx context.Context, sub Submission) error {
	if c.cfg.Host == "" || len(c.cfg.NotifyTo) == 0 {
		return errors.New("smtp channel not configured")
	}

	body, err := renderAdminBody(sub)
	if err != nil {
		return fmt.Errorf("render admin body: %w", err)
	}

	msg := gomail.NewMsg()
	from := c.cfg.From
	if from == "" {
		from = c.cfg.Username
	}
	if err := msg.From(from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(c.cfg.NotifyTo...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	// Operators reply straight to the submitter.
	if err := msg.ReplyTo(sub.Email); err != nil {
		return fmt.Errorf("set reply-to: %w", err)
	}
	msg.Subject(AdminSubject(sub))
	msg.SetBodyString(gomail.TypeTextHTML, body)

	opts := []gomail.Option{
		gomail.WithPort(c.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(c.cfg.Username),
		gomail.WithPassword(c.cfg.Password),
	}
	if c.cfg.Port == 465 {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	}

	client, err := gomail.NewClient(c.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
