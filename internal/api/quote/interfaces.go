package quote

import (
	"context"

	"github.com/sparkquote/estimator-backend/internal/entity"
)

type QuoteUsecase interface {
	RequestClarifyingQuestions(ctx context.Context, description string) (*entity.Quote, error)
	EstimateQuote(ctx context.Context, quoteID string, answers []entity.Answer, hourlyRate *float64) (*entity.Quote, error)
	EstimateAdHoc(ctx context.Context, description string, answers []entity.Answer, hourlyRate *float64) ([]entity.Task, entity.QuoteTotals, error)
	GetQuote(ctx context.Context, quoteID string) (*entity.Quote, error)
	GetEstimatedQuote(ctx context.Context, quoteID string) (*entity.Quote, error)
}
