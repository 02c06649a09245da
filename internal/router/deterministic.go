package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/aescanero/dago-bank-assistant/internal/eval/cel"
	"go.uber.org/zap"
)

// Rule is a CEL condition over the lower-cased query and the category it selects
type Rule struct {
	Condition string   `json:"condition"`
	Target    Category `json:"target"`
}

// DefaultRules is the fast-path rule table. Order is significant: the
// standalone cédula rule runs after the knowledge rules, so a knowledge
// phrase followed by a bare V- token classifies as knowledge.
func DefaultRules() []Rule {
	return []Rule{
		// balance keywords
		{Condition: `query.contains('balance')`, Target: Balance},
		{Condition: `query.contains('saldo')`, Target: Balance},
		{Condition: `query.matches(r'cu[aá]nto.*dinero')`, Target: Balance},
		{Condition: `query.matches(r'cu[aá]nto.*tengo')`, Target: Balance},
		{Condition: `query.matches(r'estado.*cuenta')`, Target: Balance},
		{Condition: `query.matches(r'consultar.*cuenta')`, Target: Balance},
		{Condition: `query.matches(r'c[eé]dula.*v-\d+')`, Target: Balance},

		// knowledge keywords
		{Condition: `query.matches(r'c[oó]mo.*abrir.*cuenta')`, Target: Knowledge},
		{Condition: `query.matches(r'c[oó]mo.*solicitar.*tarjeta')`, Target: Knowledge},
		{Condition: `query.matches(r'c[oó]mo.*transferir')`, Target: Knowledge},
		{Condition: `query.matches(r'c[oó]mo.*hacer.*transferencia')`, Target: Knowledge},
		{Condition: `query.matches(r'requisitos.*para')`, Target: Knowledge},
		{Condition: `query.matches(r'informaci[oó]n.*sobre')`, Target: Knowledge},
		{Condition: `query.matches(r'qu[eé].*necesito.*para')`, Target: Knowledge},
		{Condition: `query.matches(r'pasos.*para')`, Target: Knowledge},
		{Condition: `query.contains('procedimiento')`, Target: Knowledge},
		{Condition: `query.matches(r'tarjeta.*cr[eé]dito')`, Target: Knowledge},
		{Condition: `query.matches(r'cuenta.*ahorro')`, Target: Knowledge},

		// a bare cédula token anywhere
		{Condition: `query.matches(r'v-\d{7,8}')`, Target: Balance},
	}
}

// RuleClassifier evaluates an ordered rule table, first match wins
type RuleClassifier struct {
	rules        []Rule
	celEvaluator *cel.Evaluator
	logger       *zap.Logger
}

// NewRuleClassifier validates every rule and returns a classifier over them
func NewRuleClassifier(rules []Rule, logger *zap.Logger) (*RuleClassifier, error) {
	evaluator := cel.NewEvaluator()

	for i, rule := range rules {
		if rule.Condition == "" {
			return nil, fmt.Errorf("rule %d: condition is required", i)
		}
		if !rule.Target.Valid() {
			return nil, fmt.Errorf("rule %d: unknown target %q", i, rule.Target)
		}
		if err := evaluator.ValidateExpression(rule.Condition); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	return &RuleClassifier{
		rules:        append([]Rule(nil), rules...),
		celEvaluator: evaluator,
		logger:       logger,
	}, nil
}

// Classify returns the target of the first matching rule. ok is false when
// no rule matched and the caller should defer to a fallback.
func (c *RuleClassifier) Classify(ctx context.Context, text string) (Category, int, bool) {
	query := strings.ToLower(text)

	for i, rule := range c.rules {
		matched, err := c.celEvaluator.Match(ctx, rule.Condition, query)
		if err != nil {
			c.logger.Warn("rule evaluation error",
				zap.Int("rule_index", i),
				zap.String("condition", rule.Condition),
				zap.Error(err),
			)
			// Continue to next rule on error
			continue
		}

		if matched {
			c.logger.Debug("rule matched",
				zap.Int("rule_index", i),
				zap.String("condition", rule.Condition),
				zap.String("target", string(rule.Target)),
			)
			return rule.Target, i, true
		}
	}

	return "", -1, false
}

// Rules returns a copy of the rule table
func (c *RuleClassifier) Rules() []Rule {
	return append([]Rule(nil), c.rules...)
}
