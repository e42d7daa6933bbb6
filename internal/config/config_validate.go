// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validatePoster(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validEnvironments defines the allowed server environments
var validEnvironments = map[string]bool{
	"development": true,
	"production":  true,
}

// validateServer validates HTTP server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, production")
	}
	return nil
}

// validateData validates the dataset source configuration
func (c *Config) validateData() error {
	switch c.Data.Source {
	case SourceFiles:
		if c.Data.CatalogPath == "" {
			return fmt.Errorf("CATALOG_PATH is required when DATA_SOURCE=files")
		}
		if c.Data.MatrixPath == "" {
			return fmt.Errorf("MATRIX_PATH is required when DATA_SOURCE=files")
		}
	case SourceDuckDB:
		if c.Data.DuckDBPath == "" {
			return fmt.Errorf("DUCKDB_PATH is required when DATA_SOURCE=duckdb")
		}
	default:
		return fmt.Errorf("DATA_SOURCE must be one of: files, duckdb")
	}
	return nil
}

// validateRecommend validates recommendation limits
func (c *Config) validateRecommend() error {
	if c.Recommend.DefaultK < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_K must be at least 1")
	}
	if c.Recommend.MaxK < c.Recommend.DefaultK {
		return fmt.Errorf("RECOMMEND_MAX_K must be >= RECOMMEND_DEFAULT_K")
	}
	return nil
}

// validatePoster validates TMDB poster configuration (only if enabled)
func (c *Config) validatePoster() error {
	if !c.Poster.Enabled {
		return nil
	}

	if c.Poster.APIKey == "" {
		return fmt.Errorf("TMDB_API_KEY is required when POSTER_ENABLED=true")
	}
	if err := validateBaseURL(c.Poster.APIURL, "TMDB_API_URL"); err != nil {
		return err
	}
	if err := validateBaseURL(c.Poster.ImageBase, "TMDB_IMAGE_BASE"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.Poster.NoPosterURL, "POSTER_NO_POSTER_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.Poster.ErrorPosterURL, "POSTER_ERROR_URL"); err != nil {
		return err
	}
	if c.Poster.Timeout <= 0 {
		return fmt.Errorf("POSTER_TIMEOUT must be positive")
	}
	if c.Poster.RequestsPerSecond < 0 {
		return fmt.Errorf("POSTER_REQUESTS_PER_SECOND must not be negative")
	}
	if c.Poster.RequestsPerSecond > 0 && c.Poster.Burst < 1 {
		return fmt.Errorf("POSTER_BURST must be at least 1 when rate limiting is enabled")
	}

	if err := c.validatePosterCache(); err != nil {
		return err
	}
	return c.validatePosterBreaker()
}

// validatePosterCache validates the poster cache configuration
func (c *Config) validatePosterCache() error {
	cache := c.Poster.Cache
	if !cache.Enabled {
		return nil
	}
	if cache.TTL <= 0 {
		return fmt.Errorf("POSTER_CACHE_TTL must be positive")
	}
	switch cache.Backend {
	case CacheBackendMemory:
		if cache.Capacity < 1 {
			return fmt.Errorf("POSTER_CACHE_CAPACITY must be at least 1")
		}
	case CacheBackendBadger:
		if cache.Path == "" {
			return fmt.Errorf("POSTER_CACHE_PATH is required when POSTER_CACHE_BACKEND=badger")
		}
	default:
		return fmt.Errorf("POSTER_CACHE_BACKEND must be one of: memory, badger")
	}
	return nil
}

// validatePosterBreaker validates circuit breaker settings
func (c *Config) validatePosterBreaker() error {
	b := c.Poster.Breaker
	if !b.Enabled {
		return nil
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("POSTER_BREAKER_FAILURE_RATIO must be in (0, 1]")
	}
	if b.Timeout <= 0 {
		return fmt.Errorf("POSTER_BREAKER_TIMEOUT must be positive")
	}
	if b.MaxRequests < 1 {
		return fmt.Errorf("POSTER_BREAKER_MAX_REQUESTS must be at least 1")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	return c.validateRateLimits()
}

// validateCORS rejects an empty origin list; a wildcard is only warned about.
func (c *Config) validateCORS() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if CORS configuration has security concerns
// that should be logged at startup
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// validateRateLimits validates rate limiting bounds (skipped when disabled)
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validLogLevels defines the allowed log levels
var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
