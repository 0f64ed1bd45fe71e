package estimate

import (
	"github.com/shopspring/decimal"
	"github.com/sparkquote/estimator-backend/internal/entity"
)

// PriceTask turns one raw model row into a fully priced task. Defaulting is
// preferred over failure: a missing time range contributes zero hours, an
// unknown confidence label is treated as Medium and unpriced materials cost
// nothing. The cost range is always derived here, never taken from the model.
func PriceTask(raw entity.RawTask, hourlyRate float64) entity.Task {
	confidence := entity.ParseConfidence(raw.Confidence)

	timeRange := entity.Range{}
	switch {
	case raw.TimeRange != nil:
		timeRange = *raw.TimeRange
	case raw.Time != nil:
		timeRange = entity.Range{Min: *raw.Time, Max: *raw.Time}
	}
	adjusted := AdjustTimeRange(timeRange, confidence)

	materials := make([]entity.Material, 0, len(raw.Materials))
	matMin, matMax := decimal.Zero, decimal.Zero
	for _, rm := range raw.Materials {
		material := entity.Material{Name: rm.Name}
		if rm.PriceRange != nil {
			price := sortRange(*rm.PriceRange)
			material.PriceRange = &price
			matMin = matMin.Add(decimal.NewFromFloat(price.Min))
			matMax = matMax.Add(decimal.NewFromFloat(price.Max))
		}
		materials = append(materials, material)
	}

	rate := decimal.NewFromFloat(hourlyRate)
	labourMin := decimal.NewFromFloat(adjusted.Min).Mul(rate)
	labourMax := decimal.NewFromFloat(adjusted.Max).Mul(rate)

	return entity.Task{
		Job:        raw.Job,
		Confidence: confidence,
		TimeRange:  adjusted,
		Materials:  materials,
		CostRange: entity.CostRange{
			Labour:    entity.Range{Min: round2(labourMin), Max: round2(labourMax)},
			Materials: entity.Range{Min: round2(matMin), Max: round2(matMax)},
			Total: entity.Range{
				Min: round2(labourMin.Add(matMin)),
				Max: round2(labourMax.Add(matMax)),
			},
		},
	}
}

// PriceTasks prices every raw row and computes the aggregate totals.
func PriceTasks(raws []entity.RawTask, hourlyRate float64) ([]entity.Task, entity.QuoteTotals) {
	tasks := make([]entity.Task, 0, len(raws))
	for _, raw := range raws {
		tasks = append(tasks, PriceTask(raw, hourlyRate))
	}
	return tasks, Totals(tasks)
}

// Totals sums task bounds into the grand totals. Each of the bounds is summed
// independently across tasks; min and max are never mixed.
func Totals(tasks []entity.Task) entity.QuoteTotals {
	var hoursMin, hoursMax, labMin, labMax, matMin, matMax, totMin, totMax decimal.Decimal
	for _, t := range tasks {
		hoursMin = hoursMin.Add(decimal.NewFromFloat(t.TimeRange.Min))
		hoursMax = hoursMax.Add(decimal.NewFromFloat(t.TimeRange.Max))
		labMin = labMin.Add(decimal.NewFromFloat(t.CostRange.Labour.Min))
		labMax = labMax.Add(decimal.NewFromFloat(t.CostRange.Labour.Max))
		matMin = matMin.Add(decimal.NewFromFloat(t.CostRange.Materials.Min))
		matMax = matMax.Add(decimal.NewFromFloat(t.CostRange.Materials.Max))
		totMin = totMin.Add(decimal.NewFromFloat(t.CostRange.Total.Min))
		totMax = totMax.Add(decimal.NewFromFloat(t.CostRange.Total.Max))
	}

	return entity.QuoteTotals{
		Hours:     entity.Range{Min: round2(hoursMin), Max: round2(hoursMax)},
		Labour:    entity.Range{Min: round2(labMin), Max: round2(labMax)},
		Materials: entity.Range{Min: round2(matMin), Max: round2(matMax)},
		Total:     entity.Range{Min: round2(totMin), Max: round2(totMax)},
	}
}

func sortRange(r entity.Range) entity.Range {
	lo := decimal.NewFromFloat(r.Min)
	hi := decimal.NewFromFloat(r.Max)
	if lo.GreaterThan(hi) {
		lo, hi = hi, lo
	}
	return entity.Range{Min: round2(lo), Max: round2(hi)}
}
