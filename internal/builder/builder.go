package builder

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sparkquote/estimator-backend/internal/api"
	quoteapi "github.com/sparkquote/estimator-backend/internal/api/quote"
	"github.com/sparkquote/estimator-backend/internal/config"
	"github.com/sparkquote/estimator-backend/internal/integration/openai"
	"github.com/sparkquote/estimator-backend/internal/pkg/formatter"
	"github.com/sparkquote/estimator-backend/internal/repository"
	"github.com/sparkquote/estimator-backend/internal/usecase/quote"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize repositories
	quoteRepo := repository.NewQuoteMemory(cfg.QuoteCfg.SessionTTL, cfg.QuoteCfg.SessionCleanupInterval)
	logger.Info("Repositories initialized",
		zap.Duration("session_ttl", cfg.QuoteCfg.SessionTTL),
	)

	// Initialize external service connectors (with mock support)
	var llmConnector quote.LLMConnector
	if cfg.EnableMocks {
		logger.Info("Using mock connector for the estimation model")
		llmConnector = openai.NewMockConnector(logger)
	} else {
		logger.Info("Using real connector for the estimation model")
		llmConnector = openai.NewConnector(cfg.OpenAIConnectorCfg, logger)
	}

	// Initialize use cases
	quoteUC := quote.NewUsecase(quoteRepo, llmConnector, cfg.QuoteCfg, logger)
	logger.Info("Use cases initialized")

	// Setup API handlers
	quoteHandler := quoteapi.NewHandler(quoteUC, formatter.NewFactory())
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(quoteHandler, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. The write timeout covers the full request,
	// including the upstream model round-trips with retries.
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}

func setupLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return zapCfg.Build()
}
