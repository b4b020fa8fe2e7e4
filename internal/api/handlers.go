// Package api exposes game aggregation over HTTP
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/myusername/pbp-indicators/pkg/aggregator"
	"github.com/myusername/pbp-indicators/pkg/loader"
	"github.com/myusername/pbp-indicators/pkg/models"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	agg          *aggregator.Aggregator
	maxBodyBytes int64
}

// NewHandler creates a new handler
func NewHandler(agg *aggregator.Aggregator, maxBodyBytes int64) *Handler {
	if agg == nil {
		agg = aggregator.New()
	}
	return &Handler{
		agg:          agg,
		maxBodyBytes: maxBodyBytes,
	}
}

// RouterOptions configures NewRouter
type RouterOptions struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter wires the handler into a chi router
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	if len(opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: opts.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get("/health", h.HealthCheck)
	r.Post("/api/v1/games/{filename}", h.AggregateGame)
	return r
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "pbp-indicators",
	})
}

// AggregateGame aggregates a CSV play-by-play body. The teams come from the filename
// path parameter, exactly as for files on disk.
func (h *Handler) AggregateGame(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	home, away, err := loader.TeamsFromFilename(filename)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	body := r.Body
	if h.maxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	records, err := loader.ReadCSV(body)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid play-by-play: %v", err))
		return
	}

	result, err := h.agg.Aggregate(home, away, records)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, aggregator.ErrUnmatchedTeam) {
			status = http.StatusUnprocessableEntity
		}
		respondError(w, status, err.Error())
		return
	}
	result.Source = filename

	slog.Info("Aggregated game", "filename", filename, "records", len(records))
	respondJSON(w, http.StatusOK, withoutEvents(result))
}

func withoutEvents(r *models.GameResult) *models.GameResult {
	out := *r
	home, away := *r.Home, *r.Away
	home.Events, away.Events = nil, nil
	out.Home, out.Away = &home, &away
	return &out
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
