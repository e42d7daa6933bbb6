// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package cache

import "testing"

func values(results []TrieResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Value
	}
	return out
}

func TestTrie_Autocomplete(t *testing.T) {
	t.Parallel()

	trie := NewTrie()
	for i, title := range []string{"Avatar", "Avengers: Endgame", "Alien", "avatar", "Heat", "Heat"} {
		trie.InsertWithData(title, i)
	}
	trie.InsertWithData("", 99)

	if trie.Size() != 6 {
		t.Fatalf("Size() = %d, want 6", trie.Size())
	}

	tests := []struct {
		prefix string
		limit  int
		want   []string
	}{
		{"ava", 10, []string{"Avatar", "avatar"}},
		{"AV", 10, []string{"Avatar", "avatar", "Avengers: Endgame"}},
		{"a", 2, []string{"Alien", "Avatar"}},
		{"heat", 10, []string{"Heat", "Heat"}},
		{"z", 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			t.Parallel()
			got := values(trie.AutocompleteWithLimit(tt.prefix, tt.limit))
			if len(got) != len(tt.want) {
				t.Fatalf("AutocompleteWithLimit(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("AutocompleteWithLimit(%q) = %v, want %v", tt.prefix, got, tt.want)
				}
			}
		})
	}
}

func TestTrie_KeepsData(t *testing.T) {
	t.Parallel()

	trie := NewTrieWithOptions(true, 0)
	trie.InsertWithData("Heat", 0)
	trie.InsertWithData("Heat", 7)

	got := trie.AutocompleteWithLimit("Heat", 0)
	if len(got) != 2 || got[0].Data != 0 || got[1].Data != 7 {
		t.Errorf("results = %+v, want data 0 then 7", got)
	}
	if res := trie.AutocompleteWithLimit("heat", 0); len(res) != 0 {
		t.Errorf("case-sensitive trie matched lower-case prefix: %+v", res)
	}
}
