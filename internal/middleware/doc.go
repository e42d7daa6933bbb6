// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package middleware provides HTTP middleware for the Reelmatch API.
//
// Every middleware has the func(http.Handler) http.Handler shape so it can be
// mounted with chi's Router.Use:
//
//   - RequestID: honours or generates X-Request-ID and stores it for logging
//   - PrometheusMetrics: records api_requests_total and latency per route pattern
//   - Compression: gzip encodes responses for clients that accept it
package middleware
