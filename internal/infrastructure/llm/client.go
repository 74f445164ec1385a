package llm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
	"golang.org/x/exp/slog"

	"safetrip/internal/infrastructure/breaker"
)

const upstreamName = "llm"

var ErrEmptyReply = errors.New("empty reply from language model")

// Completer produces a reply for a system/user prompt pair.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type Config struct {
	Endpoint  string
	APIKey    string
	MaxTokens int
	Timeout   time.Duration
}

// Client talks to an Azure OpenAI style chat-completions deployment.
type Client struct {
	http    *http.Client
	cfg     Config
	breaker *breaker.Breaker[string]
	log     *slog.Logger
}

func NewClient(cfg Config, log *slog.Logger) *Client {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		cfg:     cfg,
		breaker: breaker.New[string](upstreamName, log),
		log:     log.With("component", "llm_client"),
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reply, err := c.breaker.Execute(func() (string, error) {
		return c.complete(ctx, systemPrompt, userPrompt)
	})
	if err != nil {
		c.log.Error("completion failed", "error", err)
		return "", fmt.Errorf("failed to make the request: %w", err)
	}
	return reply, nil
}

func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		MaxTokens: c.cfg.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("%d %s for url: %s", resp.StatusCode, http.StatusText(resp.StatusCode), c.cfg.Endpoint)
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyReply
	}

	c.log.Debug("completion received", "chars", len(parsed.Choices[0].Message.Content))
	return parsed.Choices[0].Message.Content, nil
}
