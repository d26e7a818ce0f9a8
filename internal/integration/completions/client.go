// Package completions talks to an OpenAI-compatible chat completions API.
package completions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

const DefaultEndpoint = "https://api.openai.com/v1/chat/completions"

var ErrEmptyResponse = errors.New("completions: response has no choices")

type Config struct {
	Endpoint    string
	Model       string
	MaxTokens   int
	Temperature float64
	// Timeout bounds a whole request. Zero leaves it to the transport.
	Timeout time.Duration
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// APIError is a non-2xx answer from the completions endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	message := e.Message
	if message == "" {
		message = "Unknown error"
	}
	return fmt.Sprintf("API request failed: %d - %s", e.StatusCode, message)
}

type Client struct {
	cfg  Config
	base *http.Client
}

// New builds a client. base may be nil, in which case http.DefaultClient's
// transport is used.
func New(cfg Config, base *http.Client) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if base == nil {
		base = http.DefaultClient
	}
	return &Client{cfg: cfg, base: base}
}

type request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature"`
}

type response struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends messages with apiKey as the bearer credential and returns
// the first choice's content.
func (c *Client) Complete(ctx context.Context, apiKey string, messages ...Message) (string, error) {
	body, err := json.Marshal(request{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("completions: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("completions: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient(ctx, apiKey).Do(req)
	if err != nil {
		return "", fmt.Errorf("completions: send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("completions: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var upstream errorResponse
		_ = json.Unmarshal(payload, &upstream)
		return "", &APIError{StatusCode: resp.StatusCode, Message: upstream.Error.Message}
	}

	var decoded response
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", fmt.Errorf("completions: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return decoded.Choices[0].Message.Content, nil
}

func (c *Client) httpClient(ctx context.Context, apiKey string) *http.Client {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.base)
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: apiKey,
		TokenType:   "Bearer",
	}))
	client.Timeout = c.cfg.Timeout
	return client
}
