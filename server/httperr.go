// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/katalvlaran/pairmatch/match"
)

// errBadRequest marks malformed request bodies.
var errBadRequest = errors.New("server: bad request")

// StatusCode maps an error to its HTTP status:
//   - deadline → 504, cancellation → 408
//   - oversized body → 413
//   - malformed body, invalid input, unsupported metric, dimension mismatch → 400
//   - infeasible flow → 422
//   - anything else, including internal inconsistency → 500
func StatusCode(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusRequestTimeout
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, errBadRequest),
		errors.Is(err, match.ErrInvalidInput),
		errors.Is(err, match.ErrUnsupportedMetric),
		errors.Is(err, match.ErrDimensionMismatch):
		return http.StatusBadRequest
	case errors.Is(err, match.ErrInfeasibleFlow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

type errorBody struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// writeError answers with the mapped status and logs server-side failures.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status := StatusCode(err)
	reqID := middleware.GetReqID(r.Context())
	switch {
	case status >= 500:
		log.Error("request failed", zap.String("request_id", reqID), zap.Int("status", status), zap.Error(err))
	case status == http.StatusRequestTimeout:
		log.Warn("request cancelled", zap.String("request_id", reqID), zap.Error(err))
	}

	writeJSON(w, status, errorBody{Error: err.Error(), RequestID: reqID})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
