// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP API for Reelmatch.

Routes (Chi router):

	GET /api/v1/health           service status, catalog size, poster state
	GET /api/v1/health/live      liveness probe
	GET /api/v1/titles           full catalog in order, or ?prefix= autocomplete
	GET /api/v1/recommendations  ?title=...&k=... more-like-this query
	GET /metrics                 Prometheus metrics
	GET /swagger/*               Swagger UI; /swagger/doc.json is the OpenAPI 2.0 document

All /api/v1 responses use models.APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "...", "query_time_ms": 3, "request_id": "..."}
	}

Errors set status to "error" and fill error.code:

  - VALIDATION_ERROR (400): bad title, k or limit parameter
  - ITEM_NOT_FOUND (404): the title is not in the catalog
  - RATE_LIMIT_EXCEEDED (429): httprate limit hit
  - NOT_FOUND (404): unknown route

Poster URLs are only included when poster lookup is enabled. Each row is
resolved independently and a failed lookup yields the error placeholder
image rather than an error response.
*/
package api
