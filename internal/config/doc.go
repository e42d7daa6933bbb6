// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides centralized configuration management for Reelmatch.

Configuration is layered with Koanf v2:
 1. Defaults from defaultConfig()
 2. An optional YAML file (CONFIG_PATH, config.yaml, config.yml, /etc/reelmatch/config.yaml)
 3. Environment variables, mapped explicitly in envTransformFunc

Environment variables that are not in the mapping table are ignored.

# Environment Variables

HTTP Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8501)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Dataset:
  - DATA_SOURCE: files or duckdb (default: files)
  - CATALOG_PATH: Catalog CSV (default: data/movies.csv)
  - MATRIX_PATH: Similarity matrix JSON (default: data/similarity.json)
  - DUCKDB_PATH: DuckDB database file (default: data/reelmatch.duckdb)

Recommendations:
  - RECOMMEND_DEFAULT_K: Rows returned when k is omitted (default: 5)
  - RECOMMEND_MAX_K: Upper bound on k (default: 50)

Posters:
  - POSTER_ENABLED: Resolve poster URLs from TMDB (default: false)
  - TMDB_API_KEY: TMDB API key (required when posters are enabled)
  - TMDB_API_URL, TMDB_IMAGE_BASE, TMDB_LANGUAGE
  - POSTER_TIMEOUT: Per-lookup HTTP timeout (default: 10s)
  - POSTER_REQUESTS_PER_SECOND, POSTER_BURST: Outbound rate limit
  - POSTER_CACHE_ENABLED, POSTER_CACHE_BACKEND (memory|badger), POSTER_CACHE_TTL,
    POSTER_CACHE_CAPACITY, POSTER_CACHE_PATH
  - POSTER_BREAKER_ENABLED, POSTER_BREAKER_TIMEOUT, POSTER_BREAKER_INTERVAL,
    POSTER_BREAKER_MAX_REQUESTS, POSTER_BREAKER_FAILURE_RATIO, POSTER_BREAKER_MIN_REQUESTS

Security:
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT
  - CORS_ORIGINS: Comma-separated list of allowed origins (default: *)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.LoadWithKoanfPath(path)
	if err != nil {
	    return err
	}
	addr := cfg.Server.Addr()
*/
package config
