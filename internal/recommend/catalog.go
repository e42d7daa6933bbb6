// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

// Catalog is the immutable, ordered list of recommendable items.
type Catalog struct {
	items []Item

	// byTitle maps a title to its first position.
	byTitle map[string]int
}

// NewCatalog builds a catalog from titles and external ids given in
// catalog order. Item.Index is assigned from the position; any Index
// already set on the input is ignored.
func NewCatalog(items []Item) *Catalog {
	c := &Catalog{
		items:   make([]Item, len(items)),
		byTitle: make(map[string]int, len(items)),
	}

	for i, it := range items {
		it.Index = i
		c.items[i] = it
		if _, seen := c.byTitle[it.Title]; !seen {
			c.byTitle[it.Title] = i
		}
	}

	return c
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// At returns the item at position i. It panics if i is out of range.
func (c *Catalog) At(i int) Item {
	return c.items[i]
}

// Lookup returns the position of the first item with exactly this title.
func (c *Catalog) Lookup(title string) (int, bool) {
	i, ok := c.byTitle[title]
	return i, ok
}

// Titles returns all titles in catalog order, duplicates included.
func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.items))
	for i, it := range c.items {
		titles[i] = it.Title
	}
	return titles
}

// Items returns a copy of the catalog entries.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}
