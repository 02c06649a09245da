package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aescanero/dago-libs/pkg/domain"
	"github.com/aescanero/dago-libs/pkg/ports"
	"github.com/aescanero/dago-bank-assistant/internal/apperrors"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when no provider client was supplied
var ErrNotConfigured = errors.New("llm client not configured")

// Completer is the single capability the assistant needs from a language model
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// CompleterFunc adapts a function to Completer
type CompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls f(ctx, prompt)
func (f CompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Options configures a Client
type Options struct {
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client implements Completer on top of a dago-libs LLM port
type Client struct {
	client ports.LLMClient
	opts   Options
	logger *zap.Logger
}

// NewClient creates a new completion client. A nil port is allowed; every
// call then fails with ErrNotConfigured.
func NewClient(client ports.LLMClient, opts Options, logger *zap.Logger) *Client {
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = 1024
	}
	return &Client{
		client: client,
		opts:   opts,
		logger: logger,
	}
}

// Complete sends prompt as a single user message and returns the reply text
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", apperrors.Collaborator("llm.Complete", ErrNotConfigured)
	}

	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	req := &domain.LLMRequest{
		Model: c.opts.Model,
		Messages: []domain.Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
		MaxTokens: c.opts.MaxTokens,
	}

	start := time.Now()
	respInterface, err := c.client.GenerateCompletion(ctx, req)
	if err != nil {
		return "", apperrors.Collaborator("llm.Complete", fmt.Errorf("llm completion failed: %w", err))
	}

	resp, ok := respInterface.(*domain.LLMResponse)
	if !ok {
		return "", apperrors.Collaborator("llm.Complete", fmt.Errorf("unexpected response type %T from LLM", respInterface))
	}

	c.logger.Debug("llm completion received",
		zap.String("model", c.opts.Model),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("response_len", len(resp.Content)),
	)

	return resp.Content, nil
}
