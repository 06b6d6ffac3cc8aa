// Package services – AssistantService
//
// This file implements the chat-widget proxy: it wraps a visitor message
// with the fixed TechMate persona instruction, forwards the single-turn
// prompt to the generative-language provider, and relays the reply. No
// conversation history is retained between requests.
package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bodhify/go-site-backend/internal/chat"
)

// DefaultSystemPrompt is the fixed persona instruction prepended to every
// visitor message. It constrains the assistant to the company's services and
// contact details.
const DefaultSystemPrompt = `You are TechMate, a helpful AI assistant for Bodhify Tech, a company that provides end-to-end software development and IT services.
Your role is to assist website visitors by:

- Explaining Bodhify Tech's services, which include:
  - Website Development (React, Next.js, Node.js, responsive and SEO-optimized websites)
  - Website Maintenance (security updates, backups, 24/7 support)
  - Deployment & DevOps (CI/CD pipelines, Docker, auto-scaling, monitoring)
  - Analytics & Insights (Google Analytics 4, reporting, A/B testing)
  - E-commerce Solutions (payment integration, inventory, customer portals, multi-vendor support)
  - Technical Consulting (architecture planning, code review, digital transformation guidance)

Always answer questions in a friendly, professional, and business-focused way.

If a user asks for contact details, provide:
Phone: +916363297814
Email: admin@bodhify.tech

Also share these important links as hyperlinks:
[Contact Us](https://www.bodhify.tech/contact)
[Our Services](https://www.bodhify.tech/services)

Guide users to the right service based on their needs, and encourage them to get in touch for further discussions.`

// defaultMaxChatRunes caps the visitor message relayed to the paid provider.
const defaultMaxChatRunes = 4000

// AssistantService proxies chat-widget messages to the external provider.
// It is stateless across calls and safe for concurrent use.
type AssistantService struct {
	// Client is the provider client; its APIKey decides whether the
	// endpoint is usable at all.
	Client *chat.Client

	// SystemPrompt overrides the default persona instruction.
	SystemPrompt string

	// MaxMessageRunes caps the visitor message; values <= 0 use the default.
	MaxMessageRunes int
}

// Reply forwards a visitor message to the provider and returns its text
// reply.
//
// Semantics:
//   - ErrMissingAPIKey when no provider credential is configured; the
//     provider is never contacted in that case.
//   - ErrEmptyMessage / ErrMessageTooLarge for unusable input.
//   - *chat.ProviderError when the provider rejects the call; the raw
//     provider text is preserved for the transport layer.
//   - Any other error is a transport/decoding failure.
func (s *AssistantService) Reply(ctx context.Context, message string) (string, error) {
	tr := otel.Tracer("services/AssistantService")
	ctx, span := tr.Start(ctx, "Reply",
		trace.WithAttributes(attribute.Int("message.len", len(message))),
	)
	defer span.End()

	if s.Client == nil || s.Client.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	max := s.MaxMessageRunes
	if max <= 0 {
		max = defaultMaxChatRunes
	}
	if utf8.RuneCountInString(message) > max {
		return "", ErrMessageTooLarge
	}

	prompt := s.systemPrompt() + "\n\nUser: " + message
	return s.Client.GenerateReply(ctx, prompt)
}

func (s *AssistantService) systemPrompt() string {
	if strings.TrimSpace(s.SystemPrompt) != "" {
		return s.SystemPrompt
	}
	return DefaultSystemPrompt
}
