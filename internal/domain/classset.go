package domain

import "sort"

// ClassSet is the set of qualified class names recognized as tests for one run
type ClassSet map[string]struct{}

// NewClassSet creates a ClassSet holding the given names
func NewClassSet(names ...string) ClassSet {
	set := make(ClassSet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Add inserts a name into the set
func (s ClassSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether the set contains name
func (s ClassSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set
func (s ClassSet) Len() int {
	return len(s)
}

// Sorted returns the names in ascending order
func (s ClassSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
