// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package models defines the JSON shapes served by the Reelmatch HTTP API.

Every endpoint wraps its payload in APIResponse:

	{
	  "status": "success",
	  "data": {...},
	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 3}
	}

Errors use the same envelope with status "error" and an APIError carrying a
machine-readable code such as ITEM_NOT_FOUND or VALIDATION_ERROR.
*/
package models
