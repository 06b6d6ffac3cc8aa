// Package chat implements the outbound client for the Google Generative
// Language API ("Gemini"). The client is a thin relay: it posts a single-turn
// prompt to the generateContent endpoint, distinguishes provider rejections
// from transport failures, and extracts one best-effort text reply from the
// response structure.
//
// No conversation state is kept here; every call is independent.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FallbackReply is returned when the provider answers successfully but the
// response carries no extractable text part.
const FallbackReply = "Sorry, I could not generate a response."

// ProviderError is returned when the provider answers with a non-success
// status. Body carries the raw provider error text; the HTTP layer embeds it
// verbatim in the reply field, so it is kept unparsed.
type ProviderError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// Client calls the generateContent endpoint of a Gemini model.
type Client struct {
	// APIKey authenticates the call; passed as the key query parameter.
	APIKey string
	// Endpoint is the model's generateContent URL without the key.
	Endpoint string
	// HTTPClient overrides the default client; used by tests.
	HTTPClient *http.Client
}

// Wire structures for the generateContent request/response. Only the fields
// this relay reads are mapped.

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateReply posts a single-turn user prompt and returns the first
// candidate's first text part. When the provider responds successfully but
// without any text, FallbackReply is returned instead of an error.
//
// Error taxonomy:
//   - *ProviderError for non-2xx provider responses (raw body preserved)
//   - wrapped transport/encoding errors for everything else
func (c *Client) GenerateReply(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := c.Endpoint + "?key=" + c.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("call provider: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return "", &ProviderError{StatusCode: res.StatusCode, Body: string(raw)}
	}

	var out generateResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(out.Candidates) > 0 && len(out.Candidates[0].Content.Parts) > 0 {
		if text := out.Candidates[0].Content.Parts[0].Text; text != "" {
			return text, nil
		}
	}
	return FallbackReply, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 30 * time.Second}
}
