package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aescanero/dago-bank-assistant/internal/accounts"
	"github.com/aescanero/dago-bank-assistant/internal/eval/template"
	"github.com/aescanero/dago-bank-assistant/internal/knowledge"
	"github.com/aescanero/dago-bank-assistant/internal/llm"
	"github.com/aescanero/dago-bank-assistant/internal/prompts"
	"github.com/aescanero/dago-bank-assistant/internal/router"
	"go.uber.org/zap"
)

const (
	clarificationMessage = "Por favor, proporciona un número de cédula válido para consultar el balance. Ejemplo: V-12345678"
	llmNoCedula          = "NONE"
)

// Classifier decides the category of a query and extracts cédulas from it
type Classifier interface {
	Route(ctx context.Context, text string) *router.RoutingResult
	ExtractCedula(text string) (string, bool)
}

// BalanceLookup resolves a cédula to an account balance
type BalanceLookup interface {
	GetBalance(id string) (*accounts.BalanceInfo, error)
}

// Dependencies are the collaborators a Dispatcher delegates to
type Dependencies struct {
	Router    Classifier
	Balances  BalanceLookup
	Knowledge knowledge.Index
	LLM       llm.Completer
}

// Dispatcher routes queries to their handlers and tracks counters
type Dispatcher struct {
	router         Classifier
	balances       BalanceLookup
	knowledge      knowledge.Index
	llmClient      llm.Completer
	templateEngine *template.Engine
	stats          *Stats
	history        *History
	logger         *zap.Logger
}

// NewDispatcher creates a dispatcher. Router and Balances are required; a nil
// Knowledge or LLM makes the matching handler report a failure.
func NewDispatcher(deps Dependencies, historySize int, logger *zap.Logger) (*Dispatcher, error) {
	if deps.Router == nil {
		return nil, fmt.Errorf("router is required")
	}
	if deps.Balances == nil {
		return nil, fmt.Errorf("balance store is required")
	}

	return &Dispatcher{
		router:         deps.Router,
		balances:       deps.Balances,
		knowledge:      deps.Knowledge,
		llmClient:      deps.LLM,
		templateEngine: template.NewEngine(),
		stats:          &Stats{},
		history:        NewHistory(historySize),
		logger:         logger,
	}, nil
}

// ProcessQuery classifies text and runs the matching handler
func (d *Dispatcher) ProcessQuery(ctx context.Context, text string) (result QueryResult) {
	start := time.Now()
	d.stats.total.Inc()

	d.logger.Info("processing query", zap.Int("query_len", len(text)))

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("query processing panicked", zap.Any("panic", r), zap.Stack("stack"))
			err := fmt.Errorf("%v", r)
			result = failure(QueryTypeError, "Lo siento, ocurrió un error al procesar tu consulta: ", err)
		}

		if result.Error != "" {
			d.stats.errors.Inc()
		}
		d.history.Add(Entry{Query: text, Result: result, At: time.Now()})

		d.logger.Info("query processed",
			zap.String("query_type", result.QueryType),
			zap.Bool("success", result.Success),
			zap.Duration("elapsed", time.Since(start)),
		)
	}()

	routing := d.router.Route(ctx, text)
	if routing == nil {
		routing = &router.RoutingResult{Category: router.General, PathTaken: router.PathFallback}
	}
	category := routing.Category
	if !category.Valid() {
		category = router.General
	}
	d.stats.recordCategory(category)

	switch category {
	case router.Balance:
		result = d.handleBalance(ctx, text)
	case router.Knowledge:
		result = d.handleKnowledge(ctx, text)
	case router.General:
		result = d.handleGeneral(ctx, text)
	}
	result.Routing = routing

	return result
}

func (d *Dispatcher) handleBalance(ctx context.Context, text string) QueryResult {
	cedula, ok := d.router.ExtractCedula(text)
	if !ok {
		cedula, ok = d.askLLMForCedula(ctx, text)
	}

	if !ok {
		return QueryResult{
			Success:            false,
			QueryType:          string(router.Balance),
			Response:           clarificationMessage,
			NeedsClarification: true,
		}
	}

	info, err := d.balances.GetBalance(cedula)
	if err != nil {
		d.logger.Error("balance lookup failed", zap.String("cedula", cedula), zap.Error(err))
		result := failure(string(router.Balance), "Error al consultar el balance: ", err)
		result.Cedula = cedula
		return result
	}

	return QueryResult{
		Success:   true,
		QueryType: string(router.Balance),
		Response:  accounts.FormatBalance(info),
		Data:      info,
		Cedula:    cedula,
	}
}

// askLLMForCedula accepts only a reply shaped exactly like V-XXXXXXXX
func (d *Dispatcher) askLLMForCedula(ctx context.Context, text string) (string, bool) {
	if d.llmClient == nil {
		return "", false
	}

	prompt, err := d.templateEngine.Render(prompts.CedulaExtraction, map[string]interface{}{
		"query": text,
	})
	if err != nil {
		d.logger.Error("failed to render cedula prompt", zap.Error(err))
		return "", false
	}

	reply, err := d.llmClient.Complete(ctx, prompt)
	if err != nil {
		d.logger.Error("llm cedula extraction failed", zap.Error(err))
		return "", false
	}

	cedula := strings.TrimSpace(reply)
	if cedula == llmNoCedula || !router.IsCedula(cedula) {
		d.logger.Debug("llm found no cedula", zap.String("reply", reply))
		return "", false
	}

	return cedula, true
}

func (d *Dispatcher) handleKnowledge(ctx context.Context, text string) QueryResult {
	if d.knowledge == nil {
		return failure(string(router.Knowledge), "Error al buscar en la base de conocimientos: ", fmt.Errorf("knowledge base not configured"))
	}

	answer, err := d.knowledge.RetrieveAndGenerate(ctx, text)
	if err != nil {
		d.logger.Error("knowledge query failed", zap.Error(err))
		return failure(string(router.Knowledge), "Error al buscar en la base de conocimientos: ", err)
	}

	sources := make([]knowledge.Document, 0, len(answer.Sources))
	for _, doc := range answer.Sources {
		if doc.Source == "" {
			doc.Source = knowledge.UnknownSource
		}
		sources = append(sources, doc)
	}

	return QueryResult{
		Success:   true,
		QueryType: string(router.Knowledge),
		Response:  answer.Text,
		Sources:   sources,
	}
}

func (d *Dispatcher) handleGeneral(ctx context.Context, text string) QueryResult {
	if d.llmClient == nil {
		return failure(string(router.General), "Error al procesar la consulta: ", llm.ErrNotConfigured)
	}

	prompt, err := d.templateEngine.Render(prompts.GeneralAnswer, map[string]interface{}{
		"query": text,
	})
	if err != nil {
		return failure(string(router.General), "Error al procesar la consulta: ", err)
	}

	reply, err := d.llmClient.Complete(ctx, prompt)
	if err != nil {
		d.logger.Error("general query failed", zap.Error(err))
		return failure(string(router.General), "Error al procesar la consulta: ", err)
	}

	return QueryResult{
		Success:   true,
		QueryType: string(router.General),
		Response:  strings.TrimSpace(reply),
	}
}

// Stats returns the current counters
func (d *Dispatcher) Stats() Snapshot {
	return d.stats.Snapshot()
}

// ResetStats zeroes every counter
func (d *Dispatcher) ResetStats() {
	d.stats.Reset()
	d.logger.Info("statistics reset")
}

// History returns the recent queries, newest first
func (d *Dispatcher) History() []Entry {
	return d.history.Entries()
}

// Clear drops the history and resets the counters
func (d *Dispatcher) Clear() {
	d.history.Clear()
	d.ResetStats()
}
