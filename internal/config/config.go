package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the bank assistant
type Config struct {
	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// LLM configuration
	LLMProvider  string        `env:"LLM_PROVIDER" envDefault:"openai"`
	LLMAPIKey    string        `env:"LLM_API_KEY"`
	LLMModel     string        `env:"LLM_MODEL" envDefault:"gpt-4-0125-preview"`
	LLMTimeout   time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
	LLMMaxTokens int           `env:"LLM_MAX_TOKENS" envDefault:"1024"`

	// Data sources
	AccountsFile string `env:"ACCOUNTS_FILE" envDefault:"data/saldos.csv"`
	KnowledgeDir string `env:"KNOWLEDGE_DIR" envDefault:"knowledge_base"`
	RetrieverK   int    `env:"RETRIEVER_K" envDefault:"3"`

	// Session configuration
	HistorySize int `env:"HISTORY_SIZE" envDefault:"10"`

	// Worker configuration (serve mode)
	WorkerID      string        `env:"WORKER_ID" envDefault:"assistant-1"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASS" envDefault:""`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	StreamKey     string        `env:"STREAM_KEY" envDefault:"assistant.queries"`
	ConsumerGroup string        `env:"CONSUMER_GROUP" envDefault:"assistant-workers"`
	ResultStream  string        `env:"RESULT_STREAM" envDefault:"assistant.responses"`
	BlockTime     time.Duration `env:"BLOCK_TIME" envDefault:"1s"`

	// Health check configuration
	HealthPort int `env:"HEALTH_PORT" envDefault:"8082"`
}

// Load loads configuration from an optional .env file and environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.LLMProvider == "" {
		return fmt.Errorf("LLM_PROVIDER is required")
	}

	// LLM_API_KEY is optional; without it classification degrades to the
	// rule set and the general/knowledge handlers report a failure.

	if c.LLMModel == "" {
		return fmt.Errorf("LLM_MODEL is required")
	}

	if c.LLMTimeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive")
	}

	if c.LLMMaxTokens <= 0 {
		return fmt.Errorf("LLM_MAX_TOKENS must be positive")
	}

	if c.AccountsFile == "" {
		return fmt.Errorf("ACCOUNTS_FILE is required")
	}

	if c.KnowledgeDir == "" {
		return fmt.Errorf("KNOWLEDGE_DIR is required")
	}

	if c.RetrieverK <= 0 {
		return fmt.Errorf("RETRIEVER_K must be positive")
	}

	if c.HistorySize < 0 {
		return fmt.Errorf("HISTORY_SIZE must be non-negative")
	}

	if c.BlockTime <= 0 {
		return fmt.Errorf("BLOCK_TIME must be positive")
	}

	if c.HealthPort <= 0 || c.HealthPort > 65535 {
		return fmt.Errorf("HEALTH_PORT must be between 1 and 65535")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	return nil
}

// ValidateWorker checks the settings only serve mode depends on
func (c *Config) ValidateWorker() error {
	if c.WorkerID == "" {
		return fmt.Errorf("WORKER_ID is required")
	}

	if c.RedisAddr == "" {
		return fmt.Errorf("REDIS_ADDR is required")
	}

	if c.StreamKey == "" {
		return fmt.Errorf("STREAM_KEY is required")
	}

	if c.ConsumerGroup == "" {
		return fmt.Errorf("CONSUMER_GROUP is required")
	}

	if c.ResultStream == "" {
		return fmt.Errorf("RESULT_STREAM is required")
	}

	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config (without sensitive data)
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{LLMProvider=%s, LLMModel=%s, LLMKeySet=%v, AccountsFile=%s, KnowledgeDir=%s, "+
			"RetrieverK=%d, WorkerID=%s, RedisAddr=%s, RedisDB=%d, StreamKey=%s, HealthPort=%d, LogLevel=%s}",
		c.LLMProvider,
		c.LLMModel,
		c.LLMAPIKey != "",
		c.AccountsFile,
		c.KnowledgeDir,
		c.RetrieverK,
		c.WorkerID,
		c.RedisAddr,
		c.RedisDB,
		c.StreamKey,
		c.HealthPort,
		c.LogLevel,
	)
}
