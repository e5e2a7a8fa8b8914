package util

import (
	"sort"
	"strings"
)

// StringSet is a map[string]bool with a handful of methods added for the
// places the compiler and monitor need simple membership/ordering over
// strings (channel allowlists, symbol-table iteration order snapshots, and
// the like).
type StringSet map[string]bool

// StringSetOf builds a StringSet from a slice. A nil slice yields a nil set.
func StringSetOf(sl []string) StringSet {
	if sl == nil {
		return nil
	}

	s := StringSet{}
	for _, v := range sl {
		s.Add(v)
	}
	return s
}

// Add adds value to the set. No effect if it is already present.
func (s StringSet) Add(value string) {
	s[value] = true
}

// Has returns whether value is in the set.
func (s StringSet) Has(value string) bool {
	return s[value]
}

// Len returns the number of elements in the set.
func (s StringSet) Len() int {
	return len(s)
}

// Elements returns the set's members in no particular guaranteed order.
func (s StringSet) Elements() []string {
	if s == nil {
		return nil
	}

	el := make([]string, 0, len(s))
	for k := range s {
		el = append(el, k)
	}
	return el
}

// Sorted returns the set's members sorted alphabetically, for
// reproducible diagnostic output.
func (s StringSet) Sorted() []string {
	el := s.Elements()
	sort.Strings(el)
	return el
}

// String shows the contents of the set, alphabetized for reproducibility.
func (s StringSet) String() string {
	var sb strings.Builder

	sorted := s.Sorted()
	sb.WriteRune('{')
	for i, v := range sorted {
		sb.WriteString(v)
		if i+1 < len(sorted) {
			sb.WriteString(", ")
		}
	}
	sb.WriteRune('}')
	return sb.String()
}
