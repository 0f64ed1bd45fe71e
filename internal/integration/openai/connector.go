package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sparkquote/estimator-backend/internal/config"
	"github.com/sparkquote/estimator-backend/internal/entity"
	"github.com/sparkquote/estimator-backend/internal/integration/common"
	"github.com/sparkquote/estimator-backend/internal/metrics"
	pkghttp "github.com/sparkquote/estimator-backend/pkg/http"
	"go.uber.org/zap"
)

const (
	stageClarify  = "clarify"
	stageEstimate = "estimate"
)

// Connector talks to an OpenAI-style chat-completions endpoint. It returns the
// model's text verbatim; parsing and validation are the caller's concern.
type Connector struct {
	config    config.OpenAIConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.OpenAIConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// GenerateQuestions requests clarifying questions with the clarification-stage
// token budget.
func (c *Connector) GenerateQuestions(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "requesting clarifying questions from model")
	return c.complete(ctx, stageClarify, prompt, c.config.ClarifyMaxTokens)
}

// GenerateEstimate requests the work breakdown with the larger estimation
// token budget.
func (c *Connector) GenerateEstimate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "requesting work breakdown from model")
	return c.complete(ctx, stageEstimate, prompt, c.config.EstimateMaxTokens)
}

func (c *Connector) complete(ctx context.Context, stage, prompt string, maxTokens int) (string, error) {
	req := &entity.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: c.config.Temperature,
		MaxTokens:   maxTokens,
		Messages: []entity.ChatMessage{
			{Role: "user", Content: prompt},
		},
	}

	start := time.Now()

	var resp entity.ChatCompletionResponse
	err := retry.Do(
		func() error {
			resp = entity.ChatCompletionResponse{}
			return c.connector.DoRequest(ctx, http.MethodPost, c.config.ChatCompletionsEndpoint, req, &resp)
		},
		append(
			c.config.Retry.ToRetryOptions(),
			retry.Context(ctx),
			retry.RetryIf(isTransient),
		)...,
	)

	metrics.UpstreamRequestDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequests.WithLabelValues(stage, "error").Inc()
		// The raw cause stays in the logs; callers see a generic failure.
		ctxzap.Error(ctx, "chat completion failed", zap.String("stage", stage), zap.Error(err))
		return "", fmt.Errorf("%w: chat completion", entity.ErrUpstreamUnavailable)
	}

	if len(resp.Choices) == 0 {
		metrics.UpstreamRequests.WithLabelValues(stage, "error").Inc()
		ctxzap.Error(ctx, "chat completion returned no choices", zap.String("stage", stage))
		return "", fmt.Errorf("%w: empty choices", entity.ErrUpstreamFormat)
	}

	metrics.UpstreamRequests.WithLabelValues(stage, "success").Inc()

	if resp.Usage != nil {
		ctxzap.Debug(ctx, "chat completion succeeded",
			zap.String("stage", stage),
			zap.Int("completion_tokens", resp.Usage.CompletionTokens),
			zap.String("finish_reason", resp.Choices[0].FinishReason),
		)
	}

	return resp.Choices[0].Message.Content, nil
}

// isTransient limits retries to network failures and retryable HTTP statuses.
// Malformed payloads are never retried here; re-prompting is an explicit new
// call by the caller.
func isTransient(err error) bool {
	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return true
	}

	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Retryable()
	}

	return false
}
