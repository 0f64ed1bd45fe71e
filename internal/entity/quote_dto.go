package entity

// API request/response shapes for the quote endpoints.

type ClarifyRequest struct {
	JobDescription string `json:"jobDescription"`
}

type ClarifyResponse struct {
	QuoteID   string               `json:"quote_id"`
	Questions []ClarifyingQuestion `json:"questions"`
}

// EstimateRequest covers both flows: with a quote_id the answers are checked
// against the stored clarifying questions, without one the request is treated
// as a self-contained session.
type EstimateRequest struct {
	QuoteID         string   `json:"quote_id,omitempty"`
	JobDescription  string   `json:"jobDescription"`
	PreviousAnswers []Answer `json:"previousAnswers"`
	HourlyRate      *float64 `json:"hourlyRate,omitempty"`
}

type EstimateResponse struct {
	QuoteID string      `json:"quote_id,omitempty"`
	Jobs    []Task      `json:"jobs"`
	Totals  QuoteTotals `json:"totals"`
}

// QuoteDTO is the session snapshot returned by GET /quote/{id}.
type QuoteDTO struct {
	ID          string               `json:"quote_id"`
	Description string               `json:"job_description"`
	Status      QuoteStatus          `json:"status"`
	HourlyRate  float64              `json:"hourly_rate"`
	Questions   []ClarifyingQuestion `json:"questions"`
	Jobs        []Task               `json:"jobs,omitempty"`
	Totals      *QuoteTotals         `json:"totals,omitempty"`
}

// DocumentFormat selects the export renderer for a completed quote.
type DocumentFormat string

const (
	FormatMarkdown DocumentFormat = "md"
	FormatPDF      DocumentFormat = "pdf"
	FormatDOCX     DocumentFormat = "docx"
)
