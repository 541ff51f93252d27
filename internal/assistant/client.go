// Package assistant wraps the external chat-completion collaborator. The
// rest of the application only sees a prompt-in, reply-out contract: any
// failure talking to the service resolves to a fixed fallback string, never
// to an error.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/novabiz/internal/logging"
)

// SystemInstruction is sent with every prompt.
const SystemInstruction = `You are "Nova", an elite business startup consultant and AI assistant for NovaBiz. ` +
	`Your goal is to help entrepreneurs brainstorm ideas, refine business models, create marketing strategies, and provide professional advice. ` +
	`Keep responses concise, insightful, and formatted with Markdown for better readability. ` +
	`Always be encouraging but realistic.`

// FallbackReply is returned whenever the collaborator cannot produce a
// reply, regardless of the cause.
const FallbackReply = "I encountered an error connecting to my brain. Please try again or check your configuration."

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
	log      logging.Logger
}

func NewClient(endpoint, apiKey, model string, timeout time.Duration, log logging.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		http:     &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Generate sends the prompt with the fixed system instruction and returns
// the reply text. On any failure (missing key, transport, non-200 status,
// undecodable body, empty choices) it returns FallbackReply; callers never
// learn the cause.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	if c.apiKey == "" {
		c.log.Warn(ctx, "assistant api key is not configured")
		return FallbackReply
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: SystemInstruction},
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return FallbackReply
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return FallbackReply
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "assistant request failed", "error", err)
		return FallbackReply
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn(ctx, "assistant returned non-OK status", "status", resp.StatusCode)
		return FallbackReply
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		c.log.Warn(ctx, "assistant response is not decodable", "error", err)
		return FallbackReply
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return FallbackReply
	}
	return parsed.Choices[0].Message.Content
}
