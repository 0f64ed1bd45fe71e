package quote

import (
	"fmt"
	"strings"

	"github.com/sparkquote/estimator-backend/internal/entity"
)

// normalizeQuestions turns raw model questions into the canonical form: blank
// questions dropped, options trimmed and deduplicated in order, and the
// "Other" escape hatch present exactly once. Normalizing twice yields the
// same result.
func normalizeQuestions(raws []entity.RawQuestion) []entity.ClarifyingQuestion {
	questions := make([]entity.ClarifyingQuestion, 0, len(raws))

	for _, raw := range raws {
		text := strings.TrimSpace(raw.Question)
		if text == "" {
			continue
		}

		seen := make(map[string]struct{}, len(raw.Options)+1)
		options := make([]string, 0, len(raw.Options)+1)
		for _, opt := range raw.Options {
			opt = strings.TrimSpace(opt)
			if opt == "" {
				continue
			}
			if _, ok := seen[opt]; ok {
				continue
			}
			seen[opt] = struct{}{}
			options = append(options, opt)
		}

		if _, ok := seen[entity.OtherOption]; !ok {
			options = append(options, entity.OtherOption)
		}

		questions = append(questions, entity.ClarifyingQuestion{
			Question: text,
			Options:  options,
		})
	}

	return questions
}

// resolveAnswers checks that every clarifying question has a usable answer
// and returns them in question order. A missing answer, a blank answer or a
// literal "Other" selection (meaning the free-text override was never
// substituted in) all fail, naming the offending question.
func resolveAnswers(questions []entity.ClarifyingQuestion, answers []entity.Answer) ([]entity.Answer, error) {
	byQuestion := make(map[string]string, len(answers))
	for _, a := range answers {
		byQuestion[a.Question] = a.Answer
	}

	resolved := make([]entity.Answer, 0, len(questions))
	for _, q := range questions {
		answer, ok := byQuestion[q.Question]
		if !ok {
			return nil, fmt.Errorf("%w: %q", entity.ErrUnansweredQuestion, q.Question)
		}
		if err := checkAnswer(q.Question, answer); err != nil {
			return nil, err
		}
		resolved = append(resolved, entity.Answer{Question: q.Question, Answer: strings.TrimSpace(answer)})
	}

	return resolved, nil
}

// checkStandaloneAnswers validates answers for the sessionless flow, where
// there is no stored question list to reconcile against.
func checkStandaloneAnswers(answers []entity.Answer) error {
	for _, a := range answers {
		if strings.TrimSpace(a.Question) == "" {
			return fmt.Errorf("%w: answer with empty question text", entity.ErrInvalidParameter)
		}
		if err := checkAnswer(a.Question, a.Answer); err != nil {
			return err
		}
	}
	return nil
}

func checkAnswer(question, answer string) error {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" || trimmed == entity.OtherOption {
		return fmt.Errorf("%w: %q", entity.ErrUnansweredQuestion, question)
	}
	return nil
}
