// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"net/url"
	"strings"
)

// redacted replaces secret values in log output.
const redacted = "[REDACTED]"

// secretQueryParams are query parameters whose values never reach the logs.
var secretQueryParams = []string{"api_key", "apikey", "token", "access_token"}

// RedactSecret masks a secret, keeping the last four characters of long
// values so operators can tell keys apart.
func RedactSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return redacted
	}
	return redacted + secret[len(secret)-4:]
}

// RedactURL removes credential query parameters from a URL string.
// Unparseable input is replaced entirely.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return redacted
	}
	q := u.Query()
	changed := false
	for key := range q {
		for _, secret := range secretQueryParams {
			if strings.EqualFold(key, secret) {
				q.Set(key, redacted)
				changed = true
			}
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}
