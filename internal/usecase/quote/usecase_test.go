package quote

import (
	"context"
	"testing"
	"time"

	"github.com/sparkquote/estimator-backend/internal/config"
	"github.com/sparkquote/estimator-backend/internal/entity"
	"github.com/sparkquote/estimator-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validQuestionsJSON = `{"questions": [
	{"question": "Property type?", "options": ["House", "Flat"]},
	{"question": "New or replacement?", "options": ["New", "Replacement"]}
]}`

const validJobsJSON = `{"jobs": [
	{
		"job": "Install double socket",
		"confidence": "Medium",
		"timeRange": {"min": 1, "max": 1},
		"materials": [{"name": "Double socket", "priceRange": {"min": 10, "max": 10}}]
	}
]}`

// stubConnector returns canned payloads and counts calls, so tests can assert
// that nothing is sent upstream when validation fails first.
type stubConnector struct {
	questionsText string
	questionsErr  error
	estimateText  string
	estimateErr   error

	questionCalls int
	estimateCalls int
}

func (s *stubConnector) GenerateQuestions(_ context.Context, _ string) (string, error) {
	s.questionCalls++
	return s.questionsText, s.questionsErr
}

func (s *stubConnector) GenerateEstimate(_ context.Context, _ string) (string, error) {
	s.estimateCalls++
	return s.estimateText, s.estimateErr
}

func newTestUsecase(t *testing.T, stub *stubConnector) *QuoteUsecase {
	t.Helper()
	repo := repository.NewQuoteMemory(time.Hour, time.Hour)
	cfg := config.QuoteConfig{
		DefaultHourlyRate: 50,
		MaxQuestions:      5,
	}
	return NewUsecase(repo, stub, cfg, zap.NewNop())
}

func startedQuote(t *testing.T, uc *QuoteUsecase) *entity.Quote {
	t.Helper()
	q, err := uc.RequestClarifyingQuestions(context.Background(), "Install two double sockets in a kitchen")
	require.NoError(t, err)
	return q
}

func answersFor(q *entity.Quote) []entity.Answer {
	answers := make([]entity.Answer, 0, len(q.Questions))
	for _, question := range q.Questions {
		answers = append(answers, entity.Answer{Question: question.Question, Answer: question.Options[0]})
	}
	return answers
}

func TestRequestClarifyingQuestions(t *testing.T) {
	t.Run("starts a session awaiting answers", func(t *testing.T) {
		stub := &stubConnector{questionsText: validQuestionsJSON}
		uc := newTestUsecase(t, stub)

		q := startedQuote(t, uc)

		assert.NotEmpty(t, q.ID)
		assert.Equal(t, entity.QuoteStatusAwaitingAnswers, q.Status)
		assert.Equal(t, 50.0, q.HourlyRate)
		require.Len(t, q.Questions, 2)
		for _, question := range q.Questions {
			assert.Contains(t, question.Options, entity.OtherOption)
		}

		stored, err := uc.GetQuote(context.Background(), q.ID)
		require.NoError(t, err)
		assert.Equal(t, q.ID, stored.ID)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("empty description never reaches upstream", func(t *testing.T) {
		stub := &stubConnector{questionsText: validQuestionsJSON}
		uc := newTestUsecase(t, stub)

		_, err := uc.RequestClarifyingQuestions(context.Background(), "   ")
		require.ErrorIs(t, err, entity.ErrEmptyDescription)
		assert.Zero(t, stub.questionCalls)
	})

	t.Run("prose payload is rejected as a format error", func(t *testing.T) {
		stub := &stubConnector{questionsText: "Sure, here are some questions..."}
		uc := newTestUsecase(t, stub)

		_, err := uc.RequestClarifyingQuestions(context.Background(), "Rewire a kitchen")
		require.ErrorIs(t, err, entity.ErrUpstreamFormat)
	})

	t.Run("payload with only blank questions is a format error", func(t *testing.T) {
		stub := &stubConnector{questionsText: `{"questions": [{"question": "  ", "options": ["A"]}]}`}
		uc := newTestUsecase(t, stub)

		_, err := uc.RequestClarifyingQuestions(context.Background(), "Rewire a kitchen")
		require.ErrorIs(t, err, entity.ErrUpstreamFormat)
	})
}

func TestEstimateQuote(t *testing.T) {
	t.Run("completes the session with priced tasks", func(t *testing.T) {
		stub := &stubConnector{questionsText: validQuestionsJSON, estimateText: validJobsJSON}
		uc := newTestUsecase(t, stub)
		q := startedQuote(t, uc)

		rate := 45.0
		estimated, err := uc.EstimateQuote(context.Background(), q.ID, answersFor(q), &rate)
		require.NoError(t, err)

		assert.Equal(t, entity.QuoteStatusEstimated, estimated.Status)
		assert.Equal(t, 45.0, estimated.HourlyRate)
		require.Len(t, estimated.Tasks, 1)

		task := estimated.Tasks[0]
		assert.Equal(t, entity.Range{Min: 1, Max: 1.25}, task.TimeRange)
		assert.Equal(t, entity.Range{Min: 45, Max: 56.25}, task.CostRange.Labour)
		assert.Equal(t, entity.Range{Min: 10, Max: 10}, task.CostRange.Materials)
		assert.Equal(t, entity.Range{Min: 55, Max: 66.25}, task.CostRange.Total)

		require.NotNil(t, estimated.Totals)
		assert.Equal(t, entity.Range{Min: 55, Max: 66.25}, estimated.Totals.Total)

		stored, err := uc.GetQuote(context.Background(), q.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.QuoteStatusEstimated, stored.Status)
	})

	t.Run("unknown session id", func(t *testing.T) {
		stub := &stubConnector{}
		uc := newTestUsecase(t, stub)

		_, err := uc.EstimateQuote(context.Background(), "no-such-id", nil, nil)
		require.ErrorIs(t, err, entity.ErrQuoteNotFound)
		assert.Zero(t, stub.estimateCalls)
	})

	t.Run("unresolved answer never reaches upstream", func(t *testing.T) {
		stub := &stubConnector{questionsText: validQuestionsJSON, estimateText: validJobsJSON}
		uc := newTestUsecase(t, stub)
		q := startedQuote(t, uc)

		answers := answersFor(q)
		answers[0].Answer = entity.OtherOption

		_, err := uc.EstimateQuote(context.Background(), q.ID, answers, nil)
		require.ErrorIs(t, err, entity.ErrUnansweredQuestion)
		assert.Zero(t, stub.estimateCalls)
	})

	t.Run("session can only be estimated once", func(t *testing.T) {
		stub := &stubConnector{questionsText: validQuestionsJSON, estimateText: validJobsJSON}
		uc := newTestUsecase(t, stub)
		q := startedQuote(t, uc)

		_, err := uc.EstimateQuote(context.Background(), q.ID, answersFor(q), nil)
		require.NoError(t, err)

		_, err = uc.EstimateQuote(context.Background(), q.ID, answersFor(q), nil)
		require.ErrorIs(t, err, entity.ErrQuoteNotAwaiting)
		assert.Equal(t, 1, stub.estimateCalls)
	})

	t.Run("non-positive rate override is rejected", func(t *testing.T) {
		stub := &stubConnector{questionsText: validQuestionsJSON, estimateText: validJobsJSON}
		uc := newTestUsecase(t, stub)
		q := startedQuote(t, uc)

		rate := 0.0
		_, err := uc.EstimateQuote(context.Background(), q.ID, answersFor(q), &rate)
		require.ErrorIs(t, err, entity.ErrInvalidHourlyRate)
		assert.Zero(t, stub.estimateCalls)
	})

	t.Run("default rate applies when no override is given", func(t *testing.T) {
		stub := &stubConnector{questionsText: validQuestionsJSON, estimateText: validJobsJSON}
		uc := newTestUsecase(t, stub)
		q := startedQuote(t, uc)

		estimated, err := uc.EstimateQuote(context.Background(), q.ID, answersFor(q), nil)
		require.NoError(t, err)
		assert.Equal(t, 50.0, estimated.HourlyRate)
		assert.Equal(t, entity.Range{Min: 50, Max: 62.5}, estimated.Tasks[0].CostRange.Labour)
	})

	t.Run("estimate payload format error leaves the session awaiting", func(t *testing.T) {
		stub := &stubConnector{questionsText: validQuestionsJSON, estimateText: "no json here"}
		uc := newTestUsecase(t, stub)
		q := startedQuote(t, uc)

		_, err := uc.EstimateQuote(context.Background(), q.ID, answersFor(q), nil)
		require.ErrorIs(t, err, entity.ErrUpstreamFormat)

		stored, err := uc.GetQuote(context.Background(), q.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.QuoteStatusAwaitingAnswers, stored.Status)
	})
}

func TestEstimateAdHoc(t *testing.T) {
	t.Run("prices a self-contained request", func(t *testing.T) {
		stub := &stubConnector{estimateText: validJobsJSON}
		uc := newTestUsecase(t, stub)

		answers := []entity.Answer{{Question: "Property type?", Answer: "House"}}
		tasks, totals, err := uc.EstimateAdHoc(context.Background(), "Install a double socket", answers, nil)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, entity.Range{Min: 60, Max: 72.5}, totals.Total)
	})

	t.Run("empty description", func(t *testing.T) {
		stub := &stubConnector{estimateText: validJobsJSON}
		uc := newTestUsecase(t, stub)

		_, _, err := uc.EstimateAdHoc(context.Background(), "", nil, nil)
		require.ErrorIs(t, err, entity.ErrEmptyDescription)
		assert.Zero(t, stub.estimateCalls)
	})

	t.Run("answer with blank question text", func(t *testing.T) {
		stub := &stubConnector{estimateText: validJobsJSON}
		uc := newTestUsecase(t, stub)

		answers := []entity.Answer{{Question: "", Answer: "House"}}
		_, _, err := uc.EstimateAdHoc(context.Background(), "Install a socket", answers, nil)
		require.ErrorIs(t, err, entity.ErrInvalidParameter)
		assert.Zero(t, stub.estimateCalls)
	})
}

func TestGetEstimatedQuote(t *testing.T) {
	stub := &stubConnector{questionsText: validQuestionsJSON, estimateText: validJobsJSON}
	uc := newTestUsecase(t, stub)
	q := startedQuote(t, uc)

	_, err := uc.GetEstimatedQuote(context.Background(), q.ID)
	require.ErrorIs(t, err, entity.ErrQuoteNotReady)

	_, err = uc.EstimateQuote(context.Background(), q.ID, answersFor(q), nil)
	require.NoError(t, err)

	estimated, err := uc.GetEstimatedQuote(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusEstimated, estimated.Status)
}
