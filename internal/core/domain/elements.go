package domain

import "sort"

// StringSet is an unordered set of distinct strings.
type StringSet map[string]struct{}

// NewStringSet creates a set holding items.
func NewStringSet(items ...string) StringSet {
	s := make(StringSet, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts item into the set.
func (s StringSet) Add(item string) {
	s[item] = struct{}{}
}

// Has reports whether item is in the set.
func (s StringSet) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of distinct items.
func (s StringSet) Len() int {
	return len(s)
}

// Union returns a new set holding the items of s and other.
func (s StringSet) Union(other StringSet) StringSet {
	out := make(StringSet, len(s)+len(other))
	for item := range s {
		out[item] = struct{}{}
	}
	for item := range other {
		out[item] = struct{}{}
	}
	return out
}

// Difference returns a new set holding the items of s that are not in other.
func (s StringSet) Difference(other StringSet) StringSet {
	out := make(StringSet)
	for item := range s {
		if !other.Has(item) {
			out[item] = struct{}{}
		}
	}
	return out
}

// Sorted returns the items in ascending byte order.
func (s StringSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}

// ElementSet holds the elements extracted from one document.
type ElementSet struct {
	// Terms are distinct capitalised words outside the stoplist.
	Terms StringSet

	// Phrases are distinct double-quoted substrings.
	Phrases StringSet

	// RequirementIDs are distinct REQ-<UPPERCASE-ALNUM> identifiers.
	RequirementIDs StringSet
}

// NewElementSet returns an ElementSet with empty, non-nil sets.
func NewElementSet() ElementSet {
	return ElementSet{
		Terms:          make(StringSet),
		Phrases:        make(StringSet),
		RequirementIDs: make(StringSet),
	}
}

// Union returns the element-wise union of e and other.
func (e ElementSet) Union(other ElementSet) ElementSet {
	return ElementSet{
		Terms:          e.Terms.Union(other.Terms),
		Phrases:        e.Phrases.Union(other.Phrases),
		RequirementIDs: e.RequirementIDs.Union(other.RequirementIDs),
	}
}
