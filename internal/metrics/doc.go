// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics for Reelmatch.

All collectors are registered on the default registry through promauto and
exposed by the API router at /metrics:

	curl http://localhost:8501/metrics

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Recommendations and dataset:
  - recommendation_requests_total{outcome}
  - recommendation_duration_seconds
  - recommendation_placeholders_total
  - catalog_items
  - dataset_load_duration_seconds{source}
  - dataset_load_errors_total{source}

Posters:
  - poster_lookups_total{outcome}
  - poster_lookup_duration_seconds
  - poster_cache_hits_total{backend}, poster_cache_misses_total{backend}
  - circuit_breaker_state{name}, circuit_breaker_requests_total{name,result},
    circuit_breaker_consecutive_failures{name},
    circuit_breaker_state_transitions_total{name,from_state,to_state}
*/
package metrics
