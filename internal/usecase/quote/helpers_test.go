package quote

import (
	"testing"

	"github.com/sparkquote/estimator-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeQuestions(t *testing.T) {
	tests := []struct {
		name     string
		raws     []entity.RawQuestion
		expected []entity.ClarifyingQuestion
	}{
		{
			name: "other is appended when missing",
			raws: []entity.RawQuestion{
				{Question: "Property type?", Options: []string{"House", "Flat"}},
			},
			expected: []entity.ClarifyingQuestion{
				{Question: "Property type?", Options: []string{"House", "Flat", "Other"}},
			},
		},
		{
			name: "other is not duplicated when present",
			raws: []entity.RawQuestion{
				{Question: "Property type?", Options: []string{"House", "Other", "Flat"}},
			},
			expected: []entity.ClarifyingQuestion{
				{Question: "Property type?", Options: []string{"House", "Other", "Flat"}},
			},
		},
		{
			name: "duplicate and blank options are dropped in order",
			raws: []entity.RawQuestion{
				{Question: "Wiring route?", Options: []string{"Surface", " Surface ", "", "Chased", "Surface"}},
			},
			expected: []entity.ClarifyingQuestion{
				{Question: "Wiring route?", Options: []string{"Surface", "Chased", "Other"}},
			},
		},
		{
			name: "blank questions are dropped entirely",
			raws: []entity.RawQuestion{
				{Question: "  ", Options: []string{"A"}},
				{Question: "Kept?", Options: []string{"Yes"}},
			},
			expected: []entity.ClarifyingQuestion{
				{Question: "Kept?", Options: []string{"Yes", "Other"}},
			},
		},
		{
			name: "question with no options still gets the escape hatch",
			raws: []entity.RawQuestion{
				{Question: "Anything else?"},
			},
			expected: []entity.ClarifyingQuestion{
				{Question: "Anything else?", Options: []string{"Other"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeQuestions(tt.raws)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalizeQuestionsIdempotent(t *testing.T) {
	raws := []entity.RawQuestion{
		{Question: "Property type?", Options: []string{"House", "House", "Flat", ""}},
		{Question: "New or replacement?", Options: []string{"New", "Replacement", "Other"}},
	}

	once := normalizeQuestions(raws)

	again := make([]entity.RawQuestion, len(once))
	for i, q := range once {
		again[i] = entity.RawQuestion{Question: q.Question, Options: q.Options}
	}

	assert.Equal(t, once, normalizeQuestions(again))
}

func TestResolveAnswers(t *testing.T) {
	questions := []entity.ClarifyingQuestion{
		{Question: "Property type?", Options: []string{"House", "Flat", "Other"}},
		{Question: "New or replacement?", Options: []string{"New", "Replacement", "Other"}},
	}

	t.Run("answers come back in question order", func(t *testing.T) {
		answers := []entity.Answer{
			{Question: "New or replacement?", Answer: "New"},
			{Question: "Property type?", Answer: "House"},
		}

		resolved, err := resolveAnswers(questions, answers)
		require.NoError(t, err)
		assert.Equal(t, []entity.Answer{
			{Question: "Property type?", Answer: "House"},
			{Question: "New or replacement?", Answer: "New"},
		}, resolved)
	})

	t.Run("free text answer is accepted", func(t *testing.T) {
		answers := []entity.Answer{
			{Question: "Property type?", Answer: "Converted barn"},
			{Question: "New or replacement?", Answer: "New"},
		}

		resolved, err := resolveAnswers(questions, answers)
		require.NoError(t, err)
		assert.Equal(t, "Converted barn", resolved[0].Answer)
	})

	t.Run("extra answers are ignored", func(t *testing.T) {
		answers := []entity.Answer{
			{Question: "Property type?", Answer: "House"},
			{Question: "New or replacement?", Answer: "New"},
			{Question: "Unasked question", Answer: "Whatever"},
		}

		resolved, err := resolveAnswers(questions, answers)
		require.NoError(t, err)
		assert.Len(t, resolved, 2)
	})

	failures := []struct {
		name    string
		answers []entity.Answer
	}{
		{
			name: "missing answer",
			answers: []entity.Answer{
				{Question: "Property type?", Answer: "House"},
			},
		},
		{
			name: "blank answer",
			answers: []entity.Answer{
				{Question: "Property type?", Answer: "   "},
				{Question: "New or replacement?", Answer: "New"},
			},
		},
		{
			name: "literal Other was never substituted",
			answers: []entity.Answer{
				{Question: "Property type?", Answer: "Other"},
				{Question: "New or replacement?", Answer: "New"},
			},
		},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolveAnswers(questions, tt.answers)
			require.ErrorIs(t, err, entity.ErrUnansweredQuestion)
			// The offending question is named so the client can re-prompt.
			assert.Contains(t, err.Error(), "Property type?")
		})
	}
}

func TestCheckStandaloneAnswers(t *testing.T) {
	t.Run("valid answers pass", func(t *testing.T) {
		err := checkStandaloneAnswers([]entity.Answer{
			{Question: "Property type?", Answer: "House"},
		})
		assert.NoError(t, err)
	})

	t.Run("no answers is fine", func(t *testing.T) {
		assert.NoError(t, checkStandaloneAnswers(nil))
	})

	t.Run("empty question text fails", func(t *testing.T) {
		err := checkStandaloneAnswers([]entity.Answer{
			{Question: " ", Answer: "House"},
		})
		require.ErrorIs(t, err, entity.ErrInvalidParameter)
	})

	t.Run("literal Other fails", func(t *testing.T) {
		err := checkStandaloneAnswers([]entity.Answer{
			{Question: "Property type?", Answer: "Other"},
		})
		require.ErrorIs(t, err, entity.ErrUnansweredQuestion)
	})
}
