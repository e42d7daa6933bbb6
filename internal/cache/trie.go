// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import (
	"sort"
	"strings"
	"sync"
)

// TrieNode represents a node in the Trie.
type TrieNode struct {
	children map[rune]*TrieNode
	entries  []TrieResult // values whose normalized key ends here
}

// Trie implements a thread-safe prefix tree for title autocomplete.
// Lookups are O(m) in the length of the prefix plus the size of the
// matching subtree.
//
// Keys are case-insensitive by default. Distinct values that normalize to
// the same key (for example two catalog rows titled "Heat") are all kept.
type Trie struct {
	mu             sync.RWMutex
	root           *TrieNode
	size           int
	caseSensitive  bool
	maxSuggestions int
}

// TrieResult represents a match from the Trie with associated data.
type TrieResult struct {
	Value string // The stored string, original case
	Data  any    // Associated data (e.g. catalog index)
}

// NewTrie creates a new Trie with default settings (case-insensitive, max 10 suggestions).
func NewTrie() *Trie {
	return NewTrieWithOptions(false, 10)
}

// NewTrieWithOptions creates a new Trie with custom settings.
func NewTrieWithOptions(caseSensitive bool, maxSuggestions int) *Trie {
	if maxSuggestions <= 0 {
		maxSuggestions = 10
	}
	return &Trie{
		root:           newTrieNode(),
		caseSensitive:  caseSensitive,
		maxSuggestions: maxSuggestions,
	}
}

func newTrieNode() *TrieNode {
	return &TrieNode{children: make(map[rune]*TrieNode)}
}

func (t *Trie) normalizeKey(key string) string {
	if t.caseSensitive {
		return key
	}
	return strings.ToLower(key)
}

// InsertWithData adds value with associated data. Empty values are ignored.
func (t *Trie) InsertWithData(value string, data any) {
	if value == "" {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	node := t.root
	for _, ch := range t.normalizeKey(value) {
		if node.children[ch] == nil {
			node.children[ch] = newTrieNode()
		}
		node = node.children[ch]
	}

	node.entries = append(node.entries, TrieResult{Value: value, Data: data})
	t.size++
}

// AutocompleteWithLimit returns up to limit entries whose key starts with
// prefix, ordered by normalized key and then insertion order. A
// non-positive limit uses the configured maximum.
func (t *Trie) AutocompleteWithLimit(prefix string, limit int) []TrieResult {
	if limit <= 0 {
		limit = t.maxSuggestions
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	node := t.root
	for _, ch := range t.normalizeKey(prefix) {
		if node.children[ch] == nil {
			return nil
		}
		node = node.children[ch]
	}

	results := make([]TrieResult, 0, limit)
	collectWords(node, limit, &results)
	return results
}

// collectWords walks the subtree depth first with children in rune order,
// stopping once limit results are collected.
func collectWords(node *TrieNode, limit int, results *[]TrieResult) {
	for _, e := range node.entries {
		if len(*results) >= limit {
			return
		}
		*results = append(*results, e)
	}

	keys := make([]rune, 0, len(node.children))
	for ch := range node.children {
		keys = append(keys, ch)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, ch := range keys {
		if len(*results) >= limit {
			return
		}
		collectWords(node.children[ch], limit, results)
	}
}

// Size returns the number of inserted values.
func (t *Trie) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.size
}
