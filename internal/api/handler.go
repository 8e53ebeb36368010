// Package api exposes the aggregation over HTTP: a single combined result as
// JSON and finite streams of combined results as Server-Sent Events.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/Belphemur/Aggregator/internal/apperrors"
	"github.com/Belphemur/Aggregator/internal/models"
	"github.com/Belphemur/Aggregator/internal/services"
)

// Handler holds all API handler state.
type Handler struct {
	aggregator services.Aggregator
	producer   services.StreamProducer
}

// NewHandler creates a new API handler.
func NewHandler(aggregator services.Aggregator, producer services.StreamProducer) *Handler {
	return &Handler{aggregator: aggregator, producer: producer}
}

// Routes mounts the API routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/data", h.GetData)
		r.Get("/data/{amount}", h.StreamData)

		// Paths of the first release, kept for existing clients
		r.Get("/random", h.GetData)
		r.Get("/stream/{amount}", h.StreamData)
	})
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetData handles GET /api/data
func (h *Handler) GetData(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)

	result, err := h.aggregator.Combine(r.Context())
	if err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Debug().Err(err).Msg("Client went away before the result was ready")
			return
		}
		logger.Error().Err(err).Msg("Failed to combine upstream resources")
		reportError(r, err)

		status := http.StatusInternalServerError
		if apperrors.IsUpstream(err) {
			status = http.StatusBadGateway
		}
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// StreamData handles GET /api/data/{amount}
func (h *Handler) StreamData(w http.ResponseWriter, r *http.Request) {
	logger := hlog.FromRequest(r)

	raw := chi.URLParam(r, "amount")
	amount, err := strconv.Atoi(raw)
	if err != nil {
		invalid := &apperrors.InvalidAmountError{Value: raw}
		logger.Debug().Err(invalid).Msg("Rejected stream request")
		writeError(w, http.StatusBadRequest, invalid.Error())
		return
	}
	req := models.StreamRequest{Amount: amount}
	if req.Amount < 0 {
		logger.Warn().Int("amount", req.Amount).Msg("Negative stream amount, sending an empty stream")
	}

	if !acceptsEventStream(r.Header.Get("Accept")) {
		writeError(w, http.StatusNotAcceptable, "this endpoint only produces "+eventStreamMediaType)
		return
	}

	events, ok := newEventWriter(w)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming is not supported by this connection")
		return
	}

	// Returning early cancels the producer, which then stops before its next Combine call
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	sent := 0
	for result := range h.producer.Produce(ctx, req.Amount) {
		if result.Err != nil {
			logger.Error().Err(result.Err).Int("sent", sent).Int("amount", req.Amount).Msg("Stream terminated by upstream failure")
			reportError(r, result.Err)
			return
		}
		if err := events.WriteJSON(result.Value); err != nil {
			logger.Debug().Err(err).Int("sent", sent).Msg("Stream client went away")
			return
		}
		sent++
	}

	logger.Debug().Int("sent", sent).Int("amount", req.Amount).Msg("Stream completed")
}

// reportError forwards err to Sentry when the request carries a hub
func reportError(r *http.Request, err error) {
	if hub := sentry.GetHubFromContext(r.Context()); hub != nil {
		hub.CaptureException(err)
	}
}
