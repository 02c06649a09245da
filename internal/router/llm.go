package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/aescanero/dago-bank-assistant/internal/prompts"
	"go.uber.org/zap"
)

// classifyLLM asks the language model for a category word
func (r *Router) classifyLLM(ctx context.Context, text string) (Category, string, error) {
	prompt, err := r.templateEngine.Render(prompts.Classification, map[string]interface{}{
		"query": text,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to render prompt: %w", err)
	}

	r.logger.Debug("calling llm for classification", zap.Int("prompt_len", len(prompt)))

	response, err := r.llmClient.Complete(ctx, prompt)
	if err != nil {
		return "", "", err
	}

	return matchLLMResponse(response), response, nil
}

// matchLLMResponse maps a free-text reply to a category. Checked in order:
// balance, knowledge, anything else is general.
func matchLLMResponse(response string) Category {
	normalized := strings.ToLower(strings.TrimSpace(response))

	switch {
	case strings.Contains(normalized, string(Balance)):
		return Balance
	case strings.Contains(normalized, string(Knowledge)):
		return Knowledge
	default:
		return General
	}
}
