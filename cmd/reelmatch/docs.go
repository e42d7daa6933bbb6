// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// General API annotations for swag. Regenerate the docs package with:
//
//	swag init -g cmd/reelmatch/docs.go -o docs --parseInternal
//
// @title Reelmatch API
// @version 1.0
// @description Content-based "more like this" movie recommendations from a precomputed item-item similarity matrix, optionally decorated with TMDB poster URLs.
// @description
// @description Every /api/v1 response is wrapped in models.APIResponse. Errors set status to "error" and carry error.code: VALIDATION_ERROR, ITEM_NOT_FOUND, RATE_LIMIT_EXCEEDED or NOT_FOUND.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/reelmatch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8501
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and liveness
//
// @tag.name Catalog
// @tag.description Catalog titles and autocomplete
//
// @tag.name Recommendations
// @tag.description Similar-title queries
package main
