package entity

import (
	"strings"
	"time"
)

// OtherOption is the free-text escape hatch appended to every clarifying
// question's option list during normalization.
const OtherOption = "Other"

// Confidence is the model-reported certainty of a task's time estimate.
type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// ParseConfidence maps a raw model label to a Confidence. Unknown labels fall
// back to Medium rather than failing the whole response.
func ParseConfidence(raw string) Confidence {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "high":
		return ConfidenceHigh
	case "low":
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

// Range is a [Min, Max] pair of hours or currency. Min <= Max holds for every
// range produced by the estimate package; raw model ranges carry no such
// guarantee.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Material is a priced line item within a task. PriceRange is nil when the
// model did not supply a usable price; such materials contribute zero to the
// rollup.
type Material struct {
	Name       string `json:"name"`
	PriceRange *Range `json:"priceRange,omitempty"`
}

// CostRange holds the derived cost bounds of a task. It is always computed
// from the time range, hourly rate and material prices, never model-supplied.
type CostRange struct {
	Labour    Range `json:"labour"`
	Materials Range `json:"materials"`
	Total     Range `json:"total"`
}

// Task is one row of the priced work breakdown.
type Task struct {
	Job        string     `json:"job"`
	Confidence Confidence `json:"confidence"`
	TimeRange  Range      `json:"timeRange"`
	Materials  []Material `json:"materials"`
	CostRange  CostRange  `json:"costRange"`
}

// QuoteTotals aggregates bounds across all tasks. Each of the bounds is summed
// independently over the tasks.
type QuoteTotals struct {
	Hours     Range `json:"hours"`
	Labour    Range `json:"labour"`
	Materials Range `json:"materials"`
	Total     Range `json:"total"`
}

// ClarifyingQuestion is a normalized multiple-choice question. Options are
// unique and always include OtherOption.
type ClarifyingQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// Answer resolves one clarifying question, keyed by the exact question text.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuoteStatus string

// Quote status represents the two-state clarify-then-estimate protocol.
const (
	QuoteStatusAwaitingAnswers QuoteStatus = "AWAITING_ANSWERS"
	QuoteStatusEstimated       QuoteStatus = "ESTIMATED"
)

// Quote is one estimation session: the description and clarifying questions
// after the clarification stage, plus answers, tasks and totals once the
// estimation stage has run.
type Quote struct {
	ID          string               `json:"quote_id"`
	Description string               `json:"job_description"`
	HourlyRate  float64              `json:"hourly_rate"`
	Status      QuoteStatus          `json:"status"`
	Questions   []ClarifyingQuestion `json:"questions"`
	Answers     []Answer             `json:"answers,omitempty"`
	Tasks       []Task               `json:"jobs,omitempty"`
	Totals      *QuoteTotals         `json:"totals,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}
