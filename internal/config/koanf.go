// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Poster fallbacks match the placeholder images the web UI has always shown.
const (
	DefaultNoPosterURL    = "https://via.placeholder.com/500x750?text=No+Poster+Available"
	DefaultErrorPosterURL = "https://via.placeholder.com/500x750?text=Error+Loading+Poster"
)

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        8501,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Data: DataConfig{
			Source:      SourceFiles,
			CatalogPath: "data/movies.csv",
			MatrixPath:  "data/similarity.json",
			DuckDBPath:  "data/reelmatch.duckdb",
		},
		Recommend: RecommendConfig{
			DefaultK: 5,
			MaxK:     50,
		},
		Poster: PosterConfig{
			Enabled:           false, // requires a TMDB API key
			APIURL:            "https://api.themoviedb.org/3",
			APIKey:            "",
			ImageBase:         "https://image.tmdb.org/t/p/w500",
			Language:          "en-US",
			NoPosterURL:       DefaultNoPosterURL,
			ErrorPosterURL:    DefaultErrorPosterURL,
			Timeout:           10 * time.Second,
			RequestsPerSecond: 20,
			Burst:             5,
			Cache: PosterCacheConfig{
				Enabled:  true,
				Backend:  CacheBackendMemory,
				TTL:      24 * time.Hour,
				Capacity: 10000,
				Path:     "data/posters",
			},
			Breaker: PosterBreakerConfig{
				Enabled:      true,
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      30 * time.Second,
				FailureRatio: 0.6,
				MinRequests:  10,
			},
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	return LoadWithKoanfPath("")
}

// LoadWithKoanfPath is LoadWithKoanf with an explicit config file. An empty
// path falls back to the CONFIG_PATH and DefaultConfigPaths search. An
// explicit path that does not exist is an error.
func LoadWithKoanfPath(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	} else if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while YAML already yields slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("failed to set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Dataset
	"data_source":  "data.source",
	"catalog_path": "data.catalog_path",
	"matrix_path":  "data.matrix_path",
	"duckdb_path":  "data.duckdb_path",

	// Recommendations
	"recommend_default_k": "recommend.default_k",
	"recommend_max_k":     "recommend.max_k",

	// Posters
	"poster_enabled":             "poster.enabled",
	"tmdb_api_url":               "poster.api_url",
	"tmdb_api_key":               "poster.api_key",
	"tmdb_image_base":            "poster.image_base",
	"tmdb_language":              "poster.language",
	"poster_no_poster_url":       "poster.no_poster_url",
	"poster_error_url":           "poster.error_poster_url",
	"poster_timeout":             "poster.timeout",
	"poster_requests_per_second": "poster.requests_per_second",
	"poster_burst":               "poster.burst",

	"poster_cache_enabled":  "poster.cache.enabled",
	"poster_cache_backend":  "poster.cache.backend",
	"poster_cache_ttl":      "poster.cache.ttl",
	"poster_cache_capacity": "poster.cache.capacity",
	"poster_cache_path":     "poster.cache.path",

	"poster_breaker_enabled":       "poster.breaker.enabled",
	"poster_breaker_max_requests":  "poster.breaker.max_requests",
	"poster_breaker_interval":      "poster.breaker.interval",
	"poster_breaker_timeout":       "poster.breaker.timeout",
	"poster_breaker_failure_ratio": "poster.breaker.failure_ratio",
	"poster_breaker_min_requests":  "poster.breaker.min_requests",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - HTTP_PORT -> server.port
//   - TMDB_API_KEY -> poster.api_key
//   - POSTER_CACHE_TTL -> poster.cache.ttl
//
// Unmapped keys return an empty string so unrelated environment variables
// never reach the config.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
