// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package cache provides the key/value stores behind poster caching and the
title prefix index used for autocomplete.

# Stores

Store is a string to string cache with a fixed time-to-live:

  - MemoryStore: bounded LRU with TTL, lost on restart
  - BadgerStore: BadgerDB on disk with native entry TTL, survives restarts

Example:

	store := cache.NewMemoryStore(10000, 24*time.Hour)
	_ = store.Set("tmdb:19995", "https://image.tmdb.org/t/p/w500/abc.jpg")
	url, ok, err := store.Get("tmdb:19995")

BadgerStore also implements suture.Service so value log garbage collection
runs under the supervisor.

# Title Index

Trie indexes catalog titles case-insensitively for prefix search:

	trie := cache.NewTrie()
	trie.InsertWithData("Avatar", 0)
	results := trie.AutocompleteWithLimit("ava", 10)
*/
package cache
