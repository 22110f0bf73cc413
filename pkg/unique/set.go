// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// package unique provides generic sets.
package unique

import (
	"cmp"
	"maps"
	"slices"
)

// Set of comparable values. The zero value is not usable, use [NewSet] or a composite literal.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](vs ...T) Set[T] {
	s := make(Set[T], len(vs))
	s.Add(vs...)
	return s
}

func (s Set[T]) Has(v T) bool { _, ok := s[v]; return ok }
func (s Set[T]) Len() int     { return len(s) }
func (s Set[T]) Remove(v T)   { delete(s, v) }

// Add values, returns the number of values that were not already present.
func (s Set[T]) Add(vs ...T) (added int) {
	for _, v := range vs {
		if !s.Has(v) {
			s[v] = struct{}{}
			added++
		}
	}
	return added
}

// List returns the members in unspecified order.
func (s Set[T]) List() []T { return slices.Collect(maps.Keys(s)) }

// Sorted returns the members of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T { return slices.Sorted(maps.Keys(s)) }

// SortedFunc returns the members of s ordered by compare.
func SortedFunc[T comparable](s Set[T], compare func(a, b T) int) []T {
	return slices.SortedFunc(maps.Keys(s), compare)
}
