// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

// Backend names reported by Store.Backend and used as metric labels.
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Store is a string key/value cache with a store-wide TTL.
// Implementations are safe for concurrent use.
type Store interface {
	// Get returns the value for key. A missing or expired key is
	// ("", false, nil); err is reserved for storage failures.
	Get(key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Len returns the number of live entries. It may be approximate.
	Len() int

	// Backend names the implementation.
	Backend() string

	// Close releases resources held by the store.
	Close() error
}

var (
	_ Store = (*MemoryStore)(nil)
	_ Store = (*BadgerStore)(nil)
)
