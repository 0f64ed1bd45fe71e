// Package schema is the validation boundary between the untrusted model text
// and the typed pipeline. The model output is treated as adversarial toward
// structure: leading prose, missing keys and inverted bounds are all expected
// failure modes. Validation here covers the envelope only; per-field
// defaulting of task rows happens in the estimate package.
package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sparkquote/estimator-backend/internal/entity"
	"github.com/xeipuuv/gojsonschema"
)

const questionsSchema = `{
	"type": "object",
	"required": ["questions"],
	"properties": {
		"questions": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["question", "options"],
				"properties": {
					"question": {"type": "string"},
					"options": {
						"type": "array",
						"items": {"type": "string"}
					}
				}
			}
		}
	}
}`

const tasksSchema = `{
	"type": "array",
	"minItems": 1,
	"items": {"type": "object"}
}`

var (
	questionsValidator *gojsonschema.Schema
	tasksValidator     *gojsonschema.Schema
)

func init() {
	var err error
	questionsValidator, err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(questionsSchema))
	if err != nil {
		panic(fmt.Sprintf("compile questions schema: %v", err))
	}
	tasksValidator, err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(tasksSchema))
	if err != nil {
		panic(fmt.Sprintf("compile tasks schema: %v", err))
	}
}

// ParseQuestions validates and decodes the clarification-stage payload. There
// is no partial-success path: the text either yields a fully valid question
// list or an ErrUpstreamFormat.
func ParseQuestions(text string) ([]entity.RawQuestion, error) {
	trimmed := strings.TrimSpace(text)
	if !startsWithDelimiter(trimmed, '{') {
		return nil, fmt.Errorf("%w: response is not a JSON object", entity.ErrUpstreamFormat)
	}

	if err := validate(questionsValidator, trimmed); err != nil {
		return nil, err
	}

	var envelope struct {
		Questions []entity.RawQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstreamFormat, err)
	}

	return envelope.Questions, nil
}

// ParseTasks validates and decodes the estimation-stage payload. The model
// has emitted both a bare array and an object keyed "jobs" or "tasks" across
// revisions; all three envelopes are accepted.
func ParseTasks(text string) ([]entity.RawTask, error) {
	trimmed := strings.TrimSpace(text)
	if !startsWithDelimiter(trimmed, '{', '[') {
		return nil, fmt.Errorf("%w: response does not start with a JSON delimiter", entity.ErrUpstreamFormat)
	}

	items := trimmed
	if trimmed[0] == '{' {
		var envelope struct {
			Jobs  json.RawMessage `json:"jobs"`
			Tasks json.RawMessage `json:"tasks"`
		}
		if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrUpstreamFormat, err)
		}
		switch {
		case len(envelope.Jobs) > 0:
			items = string(envelope.Jobs)
		case len(envelope.Tasks) > 0:
			items = string(envelope.Tasks)
		default:
			return nil, fmt.Errorf("%w: missing jobs list", entity.ErrUpstreamFormat)
		}
	}

	if err := validate(tasksValidator, items); err != nil {
		return nil, err
	}

	var tasks []entity.RawTask
	if err := json.Unmarshal([]byte(items), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrUpstreamFormat, err)
	}

	return tasks, nil
}

func validate(schema *gojsonschema.Schema, doc string) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		// The loader failed, meaning the document is not valid JSON at all.
		return fmt.Errorf("%w: %v", entity.ErrUpstreamFormat, err)
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return fmt.Errorf("%w: %s", entity.ErrUpstreamFormat, strings.Join(reasons, "; "))
	}
	return nil
}

func startsWithDelimiter(s string, delims ...byte) bool {
	if s == "" {
		return false
	}
	for _, d := range delims {
		if s[0] == d {
			return true
		}
	}
	return false
}
