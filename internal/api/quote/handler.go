package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/sparkquote/estimator-backend/internal/entity"
	"github.com/sparkquote/estimator-backend/internal/pkg/formatter"
	"github.com/sparkquote/estimator-backend/internal/pkg/logger"
	"github.com/sparkquote/estimator-backend/internal/pkg/response"
	"go.uber.org/zap"
)

// Stable user-facing messages for upstream failures. The raw causes are
// logged, never surfaced.
const (
	msgUpstreamFormat    = "The estimator returned an unusable response. Please try again."
	msgUpstreamTransport = "AI estimation failed. Please try again later."
)

type Handler struct {
	usecase    QuoteUsecase
	formatters *formatter.Factory
}

func NewHandler(usecase QuoteUsecase, formatters *formatter.Factory) *Handler {
	return &Handler{
		usecase:    usecase,
		formatters: formatters,
	}
}

// CreateQuestions handles POST /quote/questions - Clarification stage
func (h *Handler) CreateQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateQuestions")

	var req entity.ClarifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.usecase.RequestClarifyingQuestions(ctx, req.JobDescription)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toClarifyResponse(quote))
}

// Estimate handles POST /quote/estimate - Estimation stage
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Estimate")

	var req entity.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctxzap.Error(ctx, "failed to decode request body", zap.Error(err))
		response.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.QuoteID != "" {
		ctx = logger.AddFields(ctx, zap.String("quote_id", req.QuoteID))

		quote, err := h.usecase.EstimateQuote(ctx, req.QuoteID, req.PreviousAnswers, req.HourlyRate)
		if err != nil {
			h.handleUsecaseError(ctx, w, err)
			return
		}

		response.Success(w, toEstimateResponse(quote))
		return
	}

	tasks, totals, err := h.usecase.EstimateAdHoc(ctx, req.JobDescription, req.PreviousAnswers, req.HourlyRate)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.EstimateResponse{Jobs: tasks, Totals: totals})
}

// GetQuote handles GET /quote/{id} - Session snapshot
func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("quote_id", quoteID),
		zap.String("action", "GetQuote"),
	)

	quote, err := h.usecase.GetQuote(ctx, quoteID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toQuoteDTO(quote))
}

// DownloadDocument handles GET /quote/{id}/document - Export a completed quote
func (h *Handler) DownloadDocument(w http.ResponseWriter, r *http.Request) {
	quoteID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("quote_id", quoteID),
		zap.String("action", "DownloadDocument"),
	)

	format := entity.DocumentFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatPDF
	}

	renderer, err := h.formatters.Create(format)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	quote, err := h.usecase.GetEstimatedQuote(ctx, quoteID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	data, err := renderer.Format(quote)
	if err != nil {
		ctxzap.Error(ctx, "failed to render quote document", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "failed to render document")
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=quote-%s%s", quoteID, renderer.FileExtension()))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrEmptyDescription),
		errors.Is(err, entity.ErrUnansweredQuestion),
		errors.Is(err, entity.ErrInvalidHourlyRate),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidParameter):
		ctxzap.Warn(ctx, "request validation failed", zap.Error(err))
		response.Error(w, http.StatusBadRequest, err.Error())

	case errors.Is(err, entity.ErrQuoteNotFound):
		response.Error(w, http.StatusNotFound, "quote not found")

	case errors.Is(err, entity.ErrQuoteNotAwaiting),
		errors.Is(err, entity.ErrQuoteNotReady):
		ctxzap.Warn(ctx, "quote in wrong state", zap.Error(err))
		response.Error(w, http.StatusConflict, err.Error())

	case errors.Is(err, entity.ErrUpstreamFormat):
		ctxzap.Error(ctx, "upstream payload failed validation", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, msgUpstreamFormat)

	case errors.Is(err, entity.ErrUpstreamUnavailable):
		ctxzap.Error(ctx, "upstream request failed", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, msgUpstreamTransport)

	default:
		ctxzap.Error(ctx, "unexpected error", zap.Error(err))
		response.Error(w, http.StatusInternalServerError, "internal error")
	}
}
