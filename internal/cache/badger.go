// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// badgerKeyPrefix namespaces cache keys inside BadgerDB.
const badgerKeyPrefix = "cache:"

// Value log GC settings.
const (
	defaultGCInterval     = 10 * time.Minute
	defaultGCDiscardRatio = 0.5
)

// badgerRecord is the JSON value stored per key.
type badgerRecord struct {
	Value    string    `json:"value"`
	StoredAt time.Time `json:"stored_at"`
}

// BadgerStore implements Store on BadgerDB. Entries are written with a
// native TTL, so expired keys are invisible to reads and reclaimed by
// compaction.
type BadgerStore struct {
	db         *badger.DB
	ttl        time.Duration
	ownsDB     bool
	gcInterval time.Duration
}

// NewBadgerStore opens (or creates) a BadgerDB directory at path.
//
//	store, err := cache.NewBadgerStore("/data/posters", 24*time.Hour)
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
func NewBadgerStore(path string, ttl time.Duration) (*BadgerStore, error) {
	if path == "" {
		return nil, errors.New("badger path is required")
	}

	opts := badger.DefaultOptions(path)
	opts.Logger = nil                // Suppress BadgerDB internal logs
	opts.ValueLogFileSize = 16 << 20 // poster URLs are tiny

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for poster cache: %w", err)
	}

	store := NewBadgerStoreFromDB(db, ttl)
	store.ownsDB = true
	return store, nil
}

// NewBadgerStoreFromDB wraps an existing BadgerDB connection. Close does
// not close a borrowed db.
func NewBadgerStoreFromDB(db *badger.DB, ttl time.Duration) *BadgerStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &BadgerStore{db: db, ttl: ttl, gcInterval: defaultGCInterval}
}

// Get retrieves a value by key.
func (s *BadgerStore) Get(key string) (string, bool, error) {
	var rec badgerRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(badgerKeyPrefix + key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}

	return rec.Value, true, nil
}

// Set stores value under key with the store TTL.
func (s *BadgerStore) Set(key, value string) error {
	data, err := json.Marshal(badgerRecord{Value: value, StoredAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("marshal cache record: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(badgerKeyPrefix+key), data).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
}

// Len counts live keys. It scans the key space, so it is meant for health
// and metrics reporting rather than hot paths.
func (s *BadgerStore) Len() int {
	n := 0
	_ = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(badgerKeyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			if !it.Item().IsDeletedOrExpired() {
				n++
			}
		}
		return nil
	})
	return n
}

// Backend returns BackendBadger.
func (s *BadgerStore) Backend() string {
	return BackendBadger
}

// Close closes the database if the store opened it.
func (s *BadgerStore) Close() error {
	if !s.ownsDB {
		return nil
	}
	return s.db.Close()
}

// RunGC runs one round of value log garbage collection.
// Nothing to reclaim and in-memory databases are not errors.
func (s *BadgerStore) RunGC() error {
	err := s.db.RunValueLogGC(defaultGCDiscardRatio)
	if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
		return nil
	}
	return err
}

// Serve runs value log GC on an interval until ctx is canceled.
// It implements suture.Service.
func (s *BadgerStore) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.gcInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			//nolint:errcheck // GC errors are non-fatal
			s.RunGC()
		}
	}
}

// String returns the service name for supervisor logging.
func (s *BadgerStore) String() string {
	return "poster-cache-gc"
}
