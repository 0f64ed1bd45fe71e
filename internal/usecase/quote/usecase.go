package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sparkquote/estimator-backend/internal/config"
	"github.com/sparkquote/estimator-backend/internal/entity"
	"github.com/sparkquote/estimator-backend/internal/estimate"
	"github.com/sparkquote/estimator-backend/internal/metrics"
	"github.com/sparkquote/estimator-backend/internal/repository"
	"github.com/sparkquote/estimator-backend/internal/schema"
	"go.uber.org/zap"
)

// QuoteUsecase drives the two-stage clarify-then-estimate protocol. Each
// stage makes exactly one upstream call; malformed payloads are surfaced as
// errors, never silently re-prompted.
type QuoteUsecase struct {
	quoteRepo    repository.QuoteRepository
	llmConnector LLMConnector
	cfg          config.QuoteConfig
	logger       *zap.Logger
}

// NewUsecase creates a new quote use case
func NewUsecase(
	quoteRepo repository.QuoteRepository,
	llmConnector LLMConnector,
	cfg config.QuoteConfig,
	logger *zap.Logger,
) *QuoteUsecase {
	return &QuoteUsecase{
		quoteRepo:    quoteRepo,
		llmConnector: llmConnector,
		cfg:          cfg,
		logger:       logger,
	}
}

// RequestClarifyingQuestions runs the clarification stage: one upstream call,
// envelope validation, option normalization, and a new quote session in
// AWAITING_ANSWERS.
func (uc *QuoteUsecase) RequestClarifyingQuestions(ctx context.Context, description string) (*entity.Quote, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, entity.ErrEmptyDescription
	}

	text, err := uc.llmConnector.GenerateQuestions(ctx, clarifyPrompt(description, uc.cfg.MaxQuestions))
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	raws, err := schema.ParseQuestions(text)
	if err != nil {
		metrics.PayloadRejected.WithLabelValues("clarify").Inc()
		ctxzap.Warn(ctx, "clarification payload rejected", zap.Error(err))
		return nil, err
	}

	questions := normalizeQuestions(raws)
	if len(questions) == 0 {
		metrics.PayloadRejected.WithLabelValues("clarify").Inc()
		return nil, fmt.Errorf("%w: no usable questions", entity.ErrUpstreamFormat)
	}

	quote := &entity.Quote{
		ID:          uuid.New().String(),
		Description: description,
		HourlyRate:  uc.cfg.DefaultHourlyRate,
		Status:      entity.QuoteStatusAwaitingAnswers,
		Questions:   questions,
	}

	if err := uc.quoteRepo.Create(ctx, quote); err != nil {
		return nil, fmt.Errorf("create quote: %w", err)
	}

	metrics.QuotesStarted.Inc()
	ctxzap.Info(ctx, "clarification stage completed",
		zap.String("quote_id", quote.ID),
		zap.Int("question_count", len(questions)),
	)

	return quote, nil
}

// EstimateQuote runs the estimation stage against a stored session. Every
// clarifying question must have a resolved answer before anything is sent
// upstream, and a session can only be estimated once.
func (uc *QuoteUsecase) EstimateQuote(ctx context.Context, quoteID string, answers []entity.Answer, hourlyRate *float64) (*entity.Quote, error) {
	q, err := uc.quoteRepo.Get(ctx, quoteID)
	if err != nil {
		return nil, fmt.Errorf("get quote: %w", err)
	}

	if q.Status != entity.QuoteStatusAwaitingAnswers {
		return nil, fmt.Errorf("%w: status %s", entity.ErrQuoteNotAwaiting, q.Status)
	}

	resolved, err := resolveAnswers(q.Questions, answers)
	if err != nil {
		return nil, err
	}

	rate := q.HourlyRate
	if hourlyRate != nil {
		rate = *hourlyRate
	}
	if rate <= 0 {
		return nil, entity.ErrInvalidHourlyRate
	}

	tasks, totals, err := uc.estimate(ctx, q.Description, resolved, rate)
	if err != nil {
		return nil, err
	}

	q.Answers = resolved
	q.HourlyRate = rate
	q.Tasks = tasks
	q.Totals = &totals
	q.Status = entity.QuoteStatusEstimated

	if err := uc.quoteRepo.Update(ctx, q); err != nil {
		return nil, fmt.Errorf("update quote: %w", err)
	}

	return q, nil
}

// EstimateAdHoc runs the estimation stage for a self-contained request that
// carries its own description and answers instead of a session id.
func (uc *QuoteUsecase) EstimateAdHoc(ctx context.Context, description string, answers []entity.Answer, hourlyRate *float64) ([]entity.Task, entity.QuoteTotals, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, entity.QuoteTotals{}, entity.ErrEmptyDescription
	}

	if err := checkStandaloneAnswers(answers); err != nil {
		return nil, entity.QuoteTotals{}, err
	}

	rate := uc.cfg.DefaultHourlyRate
	if hourlyRate != nil {
		rate = *hourlyRate
	}
	if rate <= 0 {
		return nil, entity.QuoteTotals{}, entity.ErrInvalidHourlyRate
	}

	return uc.estimate(ctx, description, answers, rate)
}

// GetQuote returns the session snapshot.
func (uc *QuoteUsecase) GetQuote(ctx context.Context, quoteID string) (*entity.Quote, error) {
	return uc.quoteRepo.Get(ctx, quoteID)
}

// GetEstimatedQuote returns a session that has completed the estimation
// stage; anything earlier is ErrQuoteNotReady.
func (uc *QuoteUsecase) GetEstimatedQuote(ctx context.Context, quoteID string) (*entity.Quote, error) {
	q, err := uc.quoteRepo.Get(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.Status != entity.QuoteStatusEstimated {
		return nil, entity.ErrQuoteNotReady
	}
	return q, nil
}

func (uc *QuoteUsecase) estimate(ctx context.Context, description string, answers []entity.Answer, rate float64) ([]entity.Task, entity.QuoteTotals, error) {
	text, err := uc.llmConnector.GenerateEstimate(ctx, estimatePrompt(description, answers))
	if err != nil {
		return nil, entity.QuoteTotals{}, fmt.Errorf("generate estimate: %w", err)
	}

	raws, err := schema.ParseTasks(text)
	if err != nil {
		if errors.Is(err, entity.ErrUpstreamFormat) {
			metrics.PayloadRejected.WithLabelValues("estimate").Inc()
			ctxzap.Warn(ctx, "estimation payload rejected", zap.Error(err))
		}
		return nil, entity.QuoteTotals{}, err
	}

	tasks, totals := estimate.PriceTasks(raws, rate)

	metrics.EstimatesCompleted.Inc()
	ctxzap.Info(ctx, "estimation stage completed",
		zap.Int("task_count", len(tasks)),
		zap.Float64("total_max", totals.Total.Max),
	)

	return tasks, totals, nil
}
