package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	pkgRetry "github.com/sparkquote/estimator-backend/internal/pkg/retry"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR,notEmpty"`

	// Upstream text-generation service
	OpenAIConnectorCfg OpenAIConnectorConfig `envPrefix:"OPENAI_"`

	// Quote pipeline tunables
	QuoteCfg QuoteConfig `envPrefix:"QUOTE_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL,notEmpty"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// OpenAIConnectorConfig configures the chat-completions connector. The token
// budgets are configuration, not protocol invariants: the estimation budget is
// larger because the expected payload is larger.
type OpenAIConnectorConfig struct {
	HTTPClientConfig
	ChatCompletionsEndpoint string               `env:"CHAT_COMPLETIONS_ENDPOINT" envDefault:"/v1/chat/completions"`
	Model                   string               `env:"MODEL,notEmpty"`
	Temperature             float64              `env:"TEMPERATURE" envDefault:"0.2"`
	ClarifyMaxTokens        int                  `env:"CLARIFY_MAX_TOKENS" envDefault:"400"`
	EstimateMaxTokens       int                  `env:"ESTIMATE_MAX_TOKENS" envDefault:"900"`
	Retry                   pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// QuoteConfig holds quote session and pricing defaults.
type QuoteConfig struct {
	DefaultHourlyRate      float64       `env:"DEFAULT_HOURLY_RATE" envDefault:"50"`
	MaxQuestions           int           `env:"MAX_QUESTIONS" envDefault:"5"`
	SessionTTL             time.Duration `env:"SESSION_TTL" envDefault:"1h"`
	SessionCleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"10m"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"60s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL,notEmpty"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.QuoteCfg.DefaultHourlyRate <= 0 {
		return fmt.Errorf("QUOTE_DEFAULT_HOURLY_RATE must be positive, got %v", cfg.QuoteCfg.DefaultHourlyRate)
	}

	if cfg.QuoteCfg.MaxQuestions < 1 || cfg.QuoteCfg.MaxQuestions > 10 {
		return fmt.Errorf("QUOTE_MAX_QUESTIONS must be between 1 and 10, got %d", cfg.QuoteCfg.MaxQuestions)
	}

	if cfg.QuoteCfg.SessionTTL < time.Minute {
		return fmt.Errorf("QUOTE_SESSION_TTL must be at least 1m, got %v", cfg.QuoteCfg.SessionTTL)
	}

	if cfg.OpenAIConnectorCfg.ClarifyMaxTokens < 1 || cfg.OpenAIConnectorCfg.EstimateMaxTokens < 1 {
		return fmt.Errorf("token budgets must be positive")
	}

	if cfg.OpenAIConnectorCfg.EstimateMaxTokens < cfg.OpenAIConnectorCfg.ClarifyMaxTokens {
		return fmt.Errorf("OPENAI_ESTIMATE_MAX_TOKENS must not be smaller than OPENAI_CLARIFY_MAX_TOKENS")
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
