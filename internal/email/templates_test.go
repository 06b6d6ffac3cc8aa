package email

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/bodhify/go-site-backend/internal/config"
)

func sampleSubmission() Submission {
	return Submission{
		Name:       "Jane Doe",
		Email:      "jane@example.com",
		Message:    "I need a website.",
		ReceivedAt: time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestAdminSubject(t *testing.T) {
	got := AdminSubject(sampleSubmission())
	if got != "New Contact Form Submission from Jane Doe" {
		t.Fatalf("subject = %q", got)
	}
}

func TestRenderAdminBody_FieldsAndDate(t *testing.T) {
	body, err := renderAdminBody(sampleSubmission())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		"Jane Doe",
		"jane@example.com",
		"I need a website.",
		"Jun 1, 2025 12:30:00 UTC",
		"New Contact Form Submission",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("admin body missing %q:\n%s", want, body)
		}
	}
}

func TestRenderAdminBody_EscapesUserMarkup(t *testing.T) {
	sub := sampleSubmission()
	sub.Message = `<script>alert("x")</script>`
	body, err := renderAdminBody(sub)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Fatalf("markup in user input must be escaped:\n%s", body)
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag:\n%s", body)
	}
}

func TestRenderAckBody(t *testing.T) {
	body, err := renderAckBody(sampleSubmission())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(body, "Thank you for reaching out, Jane Doe!") {
		t.Fatalf("ack body missing greeting:\n%s", body)
	}
	if !strings.Contains(body, "https://bodhify.tech") {
		t.Fatalf("ack body missing website link:\n%s", body)
	}
	// Submitter message never appears in the acknowledgment.
	if strings.Contains(body, "I need a website.") {
		t.Fatalf("ack body must not echo the message:\n%s", body)
	}
}

func TestSMTPChannel_Unconfigured_FailsWithoutDialing(t *testing.T) {
	ch := NewSMTPChannel(config.SMTPConfig{})
	if ch.Name() != "smtp-admin" {
		t.Fatalf("name = %q", ch.Name())
	}
	// Host/NotifyTo missing: must fail fast, not attempt a network dial.
	if err := ch.Send(context.Background(), sampleSubmission()); err == nil {
		t.Fatalf("expected configuration error")
	}
}

func TestResendChannel_Unconfigured_FailsWithoutCalling(t *testing.T) {
	ch := NewResendChannel(config.ResendConfig{})
	if ch.Name() != "resend-ack" {
		t.Fatalf("name = %q", ch.Name())
	}
	if err := ch.Send(context.Background(), sampleSubmission()); err == nil {
		t.Fatalf("expected configuration error")
	}
}
