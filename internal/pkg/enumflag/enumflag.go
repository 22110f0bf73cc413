// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package enumflag is a custom flag value that allows one of a list of strings.
// Implements standard flag.Value and cobra pflag.Value
package enumflag

import (
	"fmt"
	"slices"
	"strings"
)

type Value[T ~string] struct {
	Value   T
	Allowed []T
}

// New flag value with a default, the default need not be allowed.
func New[T ~string](value T, allowed ...T) *Value[T] {
	allowed = slices.Clone(allowed)
	slices.Sort(allowed)
	return &Value[T]{Allowed: allowed, Value: value}
}

func (v *Value[T]) String() string { return string(v.Value) }

func (v *Value[T]) Set(x string) error {
	if !slices.Contains(v.Allowed, T(x)) {
		return fmt.Errorf("expected one of: %v", v.join())
	}
	v.Value = T(x)
	return nil
}

func (v *Value[T]) Type() string { return "string" }

// Usage returns msg followed by the allowed values.
func (v *Value[T]) Usage(msg string) string {
	if msg == "" {
		return "One of: " + v.join()
	}
	return fmt.Sprintf("%v, one of: %v", msg, v.join())
}

func (v *Value[T]) join() string {
	s := make([]string, len(v.Allowed))
	for i, a := range v.Allowed {
		s[i] = string(a)
	}
	return strings.Join(s, ", ")
}
