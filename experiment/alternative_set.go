package experiment

import (
	"maps"
	"slices"
	"strings"
)

// AlternativeSet is an unordered set of alternatives. Adding an alternative that is already in
// the set has no effect.
type AlternativeSet struct {
	elements map[Alternative]struct{}
}

// NewAlternativeSet initializes a new AlternativeSet with any number of alternatives.
func NewAlternativeSet(alts ...Alternative) AlternativeSet {
	set := make(map[Alternative]struct{}, len(alts))
	for _, a := range alts {
		set[a] = struct{}{}
	}

	return AlternativeSet{
		elements: set,
	}
}

// Add inserts one or more alternatives into the set.
func (s *AlternativeSet) Add(alts ...Alternative) {
	if s.elements == nil {
		s.elements = make(map[Alternative]struct{}, len(alts))
	}
	for _, a := range alts {
		s.elements[a] = struct{}{}
	}
}

// Contains checks if the set contains the given alternative.
func (s AlternativeSet) Contains(alt Alternative) bool {
	_, ok := s.elements[alt]

	return ok
}

// Len returns the number of distinct alternatives in the set.
func (s AlternativeSet) Len() int {
	return len(s.elements)
}

// IsEmpty reports whether the set holds no alternatives.
func (s AlternativeSet) IsEmpty() bool {
	return len(s.elements) == 0
}

// List returns the alternatives sorted by name.
func (s AlternativeSet) List() []Alternative {
	if len(s.elements) == 0 {
		return []Alternative{}
	}

	alts := slices.Collect(maps.Keys(s.elements))
	slices.SortFunc(alts, func(a, b Alternative) int {
		return strings.Compare(a.Name, b.Name)
	})

	return alts
}

// Names returns the alternative names sorted alphabetically.
func (s AlternativeSet) Names() []string {
	alts := s.List()
	names := make([]string, 0, len(alts))
	for _, a := range alts {
		names = append(names, a.Name)
	}

	return names
}

// Equal checks if two AlternativeSets hold the same alternatives.
func (s AlternativeSet) Equal(other AlternativeSet) bool {
	return maps.Equal(s.elements, other.elements)
}

// Clone returns a copy of the set that shares no state with the original.
func (s AlternativeSet) Clone() AlternativeSet {
	return AlternativeSet{
		elements: maps.Clone(s.elements),
	}
}

// String returns the alternative names as a sorted, comma-separated string.
//
// Implements the fmt.Stringer interface.
func (s AlternativeSet) String() string {
	return strings.Join(s.Names(), ",")
}
