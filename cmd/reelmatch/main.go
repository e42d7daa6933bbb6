// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package main is the reelmatch command line.
//
// reelmatch serves "more like this" movie recommendations from a precomputed
// item-item similarity matrix, optionally decorated with TMDB poster URLs.
//
// # Commands
//
//	reelmatch serve                         # HTTP API under a supervisor tree
//	reelmatch titles [--prefix P]           # list catalog titles
//	reelmatch recommend "Heat" -k 5         # query from the shell
//	reelmatch import --out data/r.duckdb    # convert CSV + JSON to DuckDB
//	reelmatch version
//
// # Configuration
//
// Settings are layered with Koanf v2 (highest priority wins):
//   - Environment variables (a .env file in the working directory is loaded first)
//   - Config file (--config, CONFIG_PATH, or ./config.yaml)
//   - Built-in defaults
//
// Poster lookup needs TMDB_ENABLED=true and TMDB_API_KEY.
//
// # Signal Handling
//
// serve shuts down on SIGINT and SIGTERM: the listener closes, in-flight
// requests drain within the supervisor timeout, and the poster cache is
// closed last.
//
// # Exit Codes
//
// Any error (invalid configuration, unreadable dataset, unknown title)
// exits with status 1.
package main

import (
	"os"

	_ "github.com/tomtom215/reelmatch/docs" // Register generated swagger docs
)

// Build information, set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
