package quote

import "github.com/sparkquote/estimator-backend/internal/entity"

func toClarifyResponse(q *entity.Quote) *entity.ClarifyResponse {
	return &entity.ClarifyResponse{
		QuoteID:   q.ID,
		Questions: q.Questions,
	}
}

func toEstimateResponse(q *entity.Quote) *entity.EstimateResponse {
	resp := &entity.EstimateResponse{
		QuoteID: q.ID,
		Jobs:    q.Tasks,
	}
	if q.Totals != nil {
		resp.Totals = *q.Totals
	}
	return resp
}

func toQuoteDTO(q *entity.Quote) *entity.QuoteDTO {
	return &entity.QuoteDTO{
		ID:          q.ID,
		Description: q.Description,
		Status:      q.Status,
		HourlyRate:  q.HourlyRate,
		Questions:   q.Questions,
		Jobs:        q.Tasks,
		Totals:      q.Totals,
	}
}
