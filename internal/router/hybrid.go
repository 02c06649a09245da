package router

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Route performs hybrid routing: fast CEL rules with LLM fallback
func (r *Router) Route(ctx context.Context, text string) *RoutingResult {
	// Phase 1: Try fast rules (CEL)
	if category, index, ok := r.rules.Classify(ctx, text); ok {
		r.logger.Info("rule-based classification",
			zap.String("category", string(category)),
			zap.Int("rule_index", index),
		)
		return &RoutingResult{
			Category:  category,
			Reasoning: fmt.Sprintf("matched fast rule %d", index),
			PathTaken: PathFast,
		}
	}

	// Phase 2: Fast rules didn't match, try LLM fallback
	if r.llmClient == nil {
		r.logger.Warn("llm client not configured, using general category")
		return &RoutingResult{
			Category:  General,
			Reasoning: "fast rules did not match and llm client not configured",
			PathTaken: PathFallback,
		}
	}

	r.logger.Info("using llm for classification")

	category, response, err := r.classifyLLM(ctx, text)
	if err != nil {
		r.logger.Error("llm classification failed", zap.Error(err))
		return &RoutingResult{
			Category:  General,
			Reasoning: fmt.Sprintf("llm classification failed: %v", err),
			PathTaken: PathFallback,
		}
	}

	r.logger.Info("llm classification",
		zap.String("category", string(category)),
		zap.String("response", response),
	)

	return &RoutingResult{
		Category:  category,
		Reasoning: fmt.Sprintf("llm classified as: %s (after fast rules failed)", response),
		PathTaken: PathSlow,
	}
}
