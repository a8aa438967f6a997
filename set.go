package plot

import (
	"sort"
)

// StringSet is a set of string values.
type StringSet map[string]struct{}

func NewStringSet() StringSet {
	return make(StringSet)
}

// Add adds x to s.
func (s StringSet) Add(x string) {
	s[x] = struct{}{}
}

// Elements returns the members of s in sorted order.
func (s StringSet) Elements() []string {
	e := make([]string, 0, len(s))
	for x := range s {
		e = append(e, x)
	}
	sort.Strings(e)
	return e
}
