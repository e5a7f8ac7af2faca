// SPDX-License-Identifier: MIT

// Package server exposes matching over HTTP.
//
// Routes:
//
//	GET  /healthz          liveness probe, plain "ok"
//	POST /v1/match         one matching problem
//	POST /v1/match/batch   independent problems solved in parallel
//
// Every response carries an X-Request-Id header; responses are gzip-encoded
// when the client accepts it. Failures are JSON {"error": ..., "request_id": ...}
// with the status chosen by StatusCode.
package server
