// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/pairmatch/config"
	"github.com/katalvlaran/pairmatch/distance"
	"github.com/katalvlaran/pairmatch/match"
	"github.com/katalvlaran/pairmatch/matrix"
)

// MatchRequest is the body of POST /v1/match and one job of a batch.
// An empty Metric means "precomputed" when CostMatrix is set; CostMatrix
// with any other metric is rejected.
type MatchRequest struct {
	Group1     match.Group `json:"group1"`
	Group2     match.Group `json:"group2"`
	Metric     string      `json:"metric,omitempty"`
	CostMatrix [][]float64 `json:"cost_matrix,omitempty"`
}

// MatchResponse is one solved problem.
type MatchResponse struct {
	JobID     string       `json:"job_id,omitempty"`
	Pairs     []match.Pair `json:"pairs"`
	TotalCost int64        `json:"total_cost"`
	SmallSide string       `json:"small_side"`
}

// BatchRequest is the body of POST /v1/match/batch.
type BatchRequest struct {
	Jobs []MatchRequest `json:"jobs"`
}

// BatchResponse lists results in job order.
type BatchResponse struct {
	Results []MatchResponse `json:"results"`
}

type handler struct {
	cfg  config.Server
	log  *zap.Logger
	opts []match.Option
}

// New returns the routed, instrumented handler. opts are applied to every
// match call.
func New(cfg config.Server, logger *zap.Logger, opts ...match.Option) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &handler{cfg: cfg, log: logger, opts: opts}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/v1", func(v1 chi.Router) {
		v1.Post("/match", h.match)
		v1.Post("/match/batch", h.batch)
	})

	return gzhttp.GzipHandler(r)
}

func (h *handler) match(w http.ResponseWriter, r *http.Request) {
	var req MatchRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	metric, cost, err := req.problem()
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	m, err := match.Match(ctx, req.Group1, req.Group2, metric, cost, h.opts...)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, response("", m))
}

func (h *handler) batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	jobs := make([]match.Job, len(req.Jobs))
	for i, jr := range req.Jobs {
		metric, cost, err := jr.problem()
		if err != nil {
			writeError(w, r, h.log, fmt.Errorf("job %d: %w", i, err))
			return
		}
		jobs[i] = match.Job{
			ID:     uuid.NewString(),
			Group1: jr.Group1,
			Group2: jr.Group2,
			Metric: metric,
			Cost:   cost,
		}
	}

	ctx, cancel := h.withTimeout(r.Context())
	defer cancel()

	out, err := match.MatchBatch(ctx, jobs, h.opts...)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := BatchResponse{Results: make([]MatchResponse, len(out))}
	for i, m := range out {
		resp.Results[i] = response(jobs[i].ID, m)
	}
	h.log.Info("batch solved",
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Int("jobs", len(jobs)))
	writeJSON(w, http.StatusOK, resp)
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := r.Body
	if h.cfg.MaxBodyBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)
	}
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return err
		}
		return fmt.Errorf("%w: %w", errBadRequest, err)
	}

	return nil
}

func (h *handler) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.cfg.RequestTimeout > 0 {
		return context.WithTimeout(ctx, h.cfg.RequestTimeout)
	}

	return context.WithCancel(ctx)
}

// problem resolves the metric and the optional precomputed matrix.
func (req MatchRequest) problem() (distance.Metric, *matrix.Cost, error) {
	metric := distance.Metric(req.Metric)
	if metric == "" {
		if req.CostMatrix == nil {
			return "", nil, fmt.Errorf("%w: metric or cost_matrix is required", errBadRequest)
		}
		metric = distance.Precomputed
	}
	if !distance.IsPrecomputed(metric) {
		if req.CostMatrix != nil {
			return "", nil, fmt.Errorf("%w: cost_matrix is only accepted with metric %q, got %q",
				errBadRequest, distance.Precomputed, req.Metric)
		}
		return metric, nil, nil
	}
	if req.CostMatrix == nil {
		return metric, nil, nil
	}
	cost, err := matrix.FromRows(req.CostMatrix)
	if err != nil {
		return "", nil, fmt.Errorf("%w: cost_matrix: %w", match.ErrInvalidInput, err)
	}

	return metric, cost, nil
}

func response(jobID string, m *match.Matching) MatchResponse {
	return MatchResponse{
		JobID:     jobID,
		Pairs:     m.Pairs,
		TotalCost: m.TotalCost,
		SmallSide: m.SmallSide.String(),
	}
}

// accessLog logs one line per request at Info.
func accessLog(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				log.Info("http request",
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", ww.Status()),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Duration("elapsed", time.Since(start)))
			}()
			next.ServeHTTP(ww, r)
		})
	}
}
