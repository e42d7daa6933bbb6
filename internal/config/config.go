// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"net"
	"strconv"
	"time"
)

// Data source names.
const (
	SourceFiles  = "files"
	SourceDuckDB = "duckdb"
)

// Poster cache backends.
const (
	CacheBackendMemory = "memory"
	CacheBackendBadger = "badger"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Poster    PosterConfig    `koanf:"poster"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// Addr returns the listen address for the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// DataConfig selects where the catalog and similarity matrix are loaded from.
type DataConfig struct {
	Source      string `koanf:"source"` // "files" or "duckdb"
	CatalogPath string `koanf:"catalog_path"`
	MatrixPath  string `koanf:"matrix_path"`
	DuckDBPath  string `koanf:"duckdb_path"`
}

// RecommendConfig bounds recommendation requests.
type RecommendConfig struct {
	DefaultK int `koanf:"default_k"`
	MaxK     int `koanf:"max_k"`
}

// PosterConfig holds TMDB poster lookup settings
type PosterConfig struct {
	Enabled           bool          `koanf:"enabled"`
	APIURL            string        `koanf:"api_url"`
	APIKey            string        `koanf:"api_key"`
	ImageBase         string        `koanf:"image_base"`
	Language          string        `koanf:"language"`
	NoPosterURL       string        `koanf:"no_poster_url"`
	ErrorPosterURL    string        `koanf:"error_poster_url"`
	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`

	Cache   PosterCacheConfig   `koanf:"cache"`
	Breaker PosterBreakerConfig `koanf:"breaker"`
}

// PosterCacheConfig controls caching of resolved poster URLs.
type PosterCacheConfig struct {
	Enabled  bool          `koanf:"enabled"`
	Backend  string        `koanf:"backend"` // "memory" or "badger"
	TTL      time.Duration `koanf:"ttl"`
	Capacity int           `koanf:"capacity"` // memory backend only
	Path     string        `koanf:"path"`     // badger backend only
}

// PosterBreakerConfig controls the circuit breaker around TMDB.
type PosterBreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"`
	Interval     time.Duration `koanf:"interval"`
	Timeout      time.Duration `koanf:"timeout"`
	FailureRatio float64       `koanf:"failure_ratio"`
	MinRequests  uint32        `koanf:"min_requests"`
}

// SecurityConfig holds HTTP rate limiting and CORS settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
