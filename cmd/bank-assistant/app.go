package main

import (
	"fmt"

	llmadapter "github.com/aescanero/dago-adapters/pkg/llm"
	"github.com/aescanero/dago-libs/pkg/ports"
	"github.com/aescanero/dago-bank-assistant/internal/accounts"
	"github.com/aescanero/dago-bank-assistant/internal/agent"
	"github.com/aescanero/dago-bank-assistant/internal/config"
	"github.com/aescanero/dago-bank-assistant/internal/eval/template"
	"github.com/aescanero/dago-bank-assistant/internal/knowledge"
	"github.com/aescanero/dago-bank-assistant/internal/llm"
	"github.com/aescanero/dago-bank-assistant/internal/prompts"
	"github.com/aescanero/dago-bank-assistant/internal/router"
	"go.uber.org/zap"
)

// app holds the wired components shared by every command
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	dispatcher *agent.Dispatcher
	store      *accounts.Store
	corpus     *knowledge.Corpus
}

// newApp loads configuration and data sources. Any error here is a startup failure.
func newApp(verbose bool) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting bank assistant",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
	)
	logger.Info("configuration loaded", zap.String("config", cfg.String()))

	if err := validatePrompts(); err != nil {
		return nil, err
	}

	// a nil *llm.Client must not become a non-nil interface
	var completer llm.Completer
	if client := newCompleter(cfg, logger); client != nil {
		completer = client
	}

	store, err := accounts.Load(cfg.AccountsFile, logger)
	if err != nil {
		return nil, err
	}

	corpus, err := knowledge.LoadCorpus(cfg.KnowledgeDir, cfg.RetrieverK, logger)
	if err != nil {
		return nil, err
	}

	index := knowledge.NewQA(corpus, completer, cfg.RetrieverK, logger)

	queryRouter, err := router.NewRouter(completer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize router: %w", err)
	}

	dispatcher, err := agent.NewDispatcher(agent.Dependencies{
		Router:    queryRouter,
		Balances:  store,
		Knowledge: index,
		LLM:       completer,
	}, cfg.HistorySize, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dispatcher: %w", err)
	}

	logger.Info("bank assistant ready",
		zap.Int("accounts", store.Len()),
		zap.Int("knowledge_chunks", corpus.Len()),
		zap.Bool("llm_enabled", completer != nil),
	)

	return &app{
		cfg:        cfg,
		logger:     logger,
		dispatcher: dispatcher,
		store:      store,
		corpus:     corpus,
	}, nil
}

// close flushes the logger
func (a *app) close() {
	_ = a.logger.Sync()
}

// newCompleter returns nil when no API key is set or the provider cannot be
// initialized; the assistant then runs on rules only.
func newCompleter(cfg *config.Config, logger *zap.Logger) *llm.Client {
	if cfg.LLMAPIKey == "" {
		logger.Warn("llm api key not provided (llm classification and answers will not be available)")
		return nil
	}

	port, err := initLLMClient(cfg, logger)
	if err != nil {
		logger.Warn("failed to initialize llm client (llm classification and answers will not be available)",
			zap.Error(err),
		)
		return nil
	}

	logger.Info("llm client initialized",
		zap.String("provider", cfg.LLMProvider),
		zap.String("model", cfg.LLMModel),
	)

	return llm.NewClient(port, llm.Options{
		Model:     cfg.LLMModel,
		MaxTokens: cfg.LLMMaxTokens,
		Timeout:   cfg.LLMTimeout,
	}, logger)
}

// initLLMClient initializes the provider client using dago-adapters
func initLLMClient(cfg *config.Config, logger *zap.Logger) (ports.LLMClient, error) {
	return llmadapter.NewClient(&llmadapter.Config{
		Provider: cfg.LLMProvider,
		APIKey:   cfg.LLMAPIKey,
		Logger:   logger,
	})
}

// validatePrompts compiles every fixed prompt once at startup
func validatePrompts() error {
	engine := template.NewEngine()
	for name, tmpl := range prompts.All {
		if err := engine.ValidateTemplate(tmpl); err != nil {
			return fmt.Errorf("invalid %s prompt: %w", name, err)
		}
	}
	return nil
}
