package engine

import (
	"cmp"
	"slices"

	"github.com/lixenwraith/despar/core"
)

// Pair is an unordered particle pair stored with A < B
type Pair struct {
	A, B core.ID
}

// MakePair normalises the order of two IDs
func MakePair(a, b core.ID) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// Has reports whether the pair references id
func (p Pair) Has(id core.ID) bool {
	return p.A == id || p.B == id
}

// ContactSet tracks pairs in sustained contact so an impulse is applied once per contact
type ContactSet struct {
	pairs map[Pair]struct{}
}

// NewContactSet creates an empty set
func NewContactSet() *ContactSet {
	return &ContactSet{pairs: make(map[Pair]struct{})}
}

// Add inserts the pair, returns false if already present
func (c *ContactSet) Add(a, b core.ID) bool {
	p := MakePair(a, b)
	if _, ok := c.pairs[p]; ok {
		return false
	}
	c.pairs[p] = struct{}{}
	return true
}

// Contains reports whether the pair is in sustained contact
func (c *ContactSet) Contains(a, b core.ID) bool {
	_, ok := c.pairs[MakePair(a, b)]
	return ok
}

// Remove deletes the pair, returns false if absent
func (c *ContactSet) Remove(a, b core.ID) bool {
	p := MakePair(a, b)
	if _, ok := c.pairs[p]; !ok {
		return false
	}
	delete(c.pairs, p)
	return true
}

// RemoveIf deletes every pair matching pred and returns how many went
func (c *ContactSet) RemoveIf(pred func(Pair) bool) int {
	removed := 0
	for p := range c.pairs {
		if pred(p) {
			delete(c.pairs, p)
			removed++
		}
	}
	return removed
}

// Len returns the number of pairs
func (c *ContactSet) Len() int {
	return len(c.pairs)
}

// Pairs returns a sorted snapshot
func (c *ContactSet) Pairs() []Pair {
	out := make([]Pair, 0, len(c.pairs))
	for p := range c.pairs {
		out = append(out, p)
	}
	slices.SortFunc(out, func(x, y Pair) int {
		if r := cmp.Compare(x.A, y.A); r != 0 {
			return r
		}
		return cmp.Compare(x.B, y.B)
	})
	return out
}

// Clear empties the set
func (c *ContactSet) Clear() {
	clear(c.pairs)
}
