package router

import (
	"context"
	"fmt"

	"github.com/aescanero/dago-bank-assistant/internal/eval/template"
	"github.com/aescanero/dago-bank-assistant/internal/llm"
	"go.uber.org/zap"
)

// Category is the kind of handler a query is routed to
type Category string

const (
	// Balance routes to the account balance lookup
	Balance Category = "balance"

	// Knowledge routes to the bank knowledge base
	Knowledge Category = "knowledge"

	// General routes to free-form conversation with the language model
	General Category = "general"
)

// Valid reports whether c is one of the three categories
func (c Category) Valid() bool {
	switch c {
	case Balance, Knowledge, General:
		return true
	}
	return false
}

// Path names how a routing decision was reached
type Path string

const (
	PathFast     Path = "fast"     // a rule matched
	PathSlow     Path = "slow"     // the language model classified it
	PathFallback Path = "fallback" // the language model was unavailable or failed
)

// RoutingResult represents the result of a routing decision
type RoutingResult struct {
	Category  Category `json:"category"`
	Reasoning string   `json:"reasoning"`
	PathTaken Path     `json:"path_taken"`
}

// Router classifies customer queries: fast rules first, language model second
type Router struct {
	rules          *RuleClassifier
	extractor      CedulaExtractor
	templateEngine *template.Engine
	llmClient      llm.Completer
	logger         *zap.Logger
}

// NewRouter creates a router over DefaultRules. completer may be nil, in
// which case unmatched queries fall back to General.
func NewRouter(completer llm.Completer, logger *zap.Logger) (*Router, error) {
	return NewRouterWithRules(DefaultRules(), completer, logger)
}

// NewRouterWithRules creates a router over a custom rule table
func NewRouterWithRules(rules []Rule, completer llm.Completer, logger *zap.Logger) (*Router, error) {
	classifier, err := NewRuleClassifier(rules, logger)
	if err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}

	return &Router{
		rules:          classifier,
		templateEngine: template.NewEngine(),
		llmClient:      completer,
		logger:         logger,
	}, nil
}

// ClassifyQuery returns the category for text. It never fails.
func (r *Router) ClassifyQuery(ctx context.Context, text string) Category {
	return r.Route(ctx, text).Category
}

// ExtractCedula returns the cédula token found in text, if any
func (r *Router) ExtractCedula(text string) (string, bool) {
	cedula, ok := r.extractor.Extract(text)
	if ok {
		r.logger.Debug("cedula extracted", zap.String("cedula", cedula))
	}
	return cedula, ok
}
