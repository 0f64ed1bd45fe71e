// Package estimate holds the deterministic numeric core of the quote
// pipeline: the confidence-driven range widening and the cost rollups. It has
// no side effects and no knowledge of the upstream service.
package estimate

import (
	"github.com/shopspring/decimal"
	"github.com/sparkquote/estimator-backend/internal/entity"
)

var (
	highFactor   = decimal.RequireFromString("1.1")
	mediumFactor = decimal.RequireFromString("1.25")
	lowFactor    = decimal.RequireFromString("2")
	two          = decimal.RequireFromString("2")
)

// AdjustTimeRange converts a raw model time range into a confidence-adjusted
// one. Raw bounds are sorted first since the model occasionally inverts them.
//
//	High:   both bounds collapse to the midpoint, upper widened by 10%,
//	        lower clamped at zero
//	Medium: upper bound widened by 25%
//	Low:    upper bound doubled
//
// Bounds are rounded to 2 decimal places and Min <= Max holds on output.
func AdjustTimeRange(raw entity.Range, confidence entity.Confidence) entity.Range {
	lo := decimal.NewFromFloat(raw.Min)
	hi := decimal.NewFromFloat(raw.Max)
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}

	var adjMin, adjMax decimal.Decimal
	switch confidence {
	case entity.ConfidenceHigh:
		mid := lo.Add(hi).Div(two)
		adjMin = decimal.Max(mid, decimal.Zero)
		adjMax = mid.Mul(highFactor)
	case entity.ConfidenceLow:
		adjMin = lo
		adjMax = hi.Mul(lowFactor)
	default:
		// Medium, and the defaulting target for malformed labels.
		adjMin = lo
		adjMax = hi.Mul(mediumFactor)
	}

	if adjMin.GreaterThan(adjMax) {
		adjMin, adjMax = adjMax, adjMin
	}

	return entity.Range{
		Min: round2(adjMin),
		Max: round2(adjMax),
	}
}

func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
