package quote

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers quote routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/quote", func(r chi.Router) {
		r.Post("/questions", h.CreateQuestions)
		r.Post("/estimate", h.Estimate)
		r.Get("/{id}", h.GetQuote)
		r.Get("/{id}/document", h.DownloadDocument)
	})
}
