package entity

import "errors"

// Domain errors
var (
	// Caller-side validation errors
	ErrEmptyDescription   = errors.New("job description is required")
	ErrUnansweredQuestion = errors.New("question has no resolved answer")
	ErrInvalidHourlyRate  = errors.New("hourly rate must be positive")
	ErrMissingField       = errors.New("required field is missing")
	ErrInvalidParameter   = errors.New("invalid parameter")

	// Quote session errors
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrQuoteNotAwaiting = errors.New("quote is not awaiting answers")
	ErrQuoteNotReady    = errors.New("quote has no estimate yet")

	// Upstream errors
	ErrUpstreamFormat      = errors.New("upstream response failed schema validation")
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")
)
