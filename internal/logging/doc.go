// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides centralized zerolog-based structured logging for Reelmatch.
//
// A single global logger is configured once at startup and shared by the
// HTTP server, the dataset loaders, the poster resolver and the CLI.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("source", "files").Msg("Dataset loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Poster lookup failed")
//
// # Request Scoped Logging
//
// The HTTP request ID middleware stores the request ID and a request logger
// tagged with request_id, method and path in the context. Ctx returns that
// logger, or the global logger outside a request.
//
// # Supervisor Integration
//
// Suture reports through slog. NewSlogLogger returns an slog.Logger whose
// records are written by the global zerolog logger:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
//
// # Secrets
//
// RedactURL and RedactSecret keep credentials such as the TMDB API key out
// of log output.
package logging
