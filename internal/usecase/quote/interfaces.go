package quote

import (
	"context"
)

// LLMConnector is the upstream text-generation service. It returns the
// model's raw text; structural validation happens in this package.
type LLMConnector interface {
	GenerateQuestions(ctx context.Context, prompt string) (string, error)
	GenerateEstimate(ctx context.Context, prompt string) (string, error)
}
