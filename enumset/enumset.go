// Package enumset provides immutable sets over small closed enumerations.
//
// Values below 64 live in an inline bit mask; larger values (such as
// capability encodings in the 4000 range) go to a small sorted overflow
// slice. Sets are values: every operation returns a new set and never
// mutates its receiver, so a Set may be shared freely between goroutines.
package enumset

import (
	"slices"
	"strings"
)

// Enum is the constraint for set elements.
type Enum interface {
	~uint32
}

// Set is an immutable set of enumeration values. The zero value is empty.
type Set[E Enum] struct {
	overflow []uint32 // sorted, unique, all >= 64
	mask     uint64
}

// Of builds a set containing the given values.
func Of[E Enum](values ...E) Set[E] {
	var s Set[E]
	for _, v := range values {
		s = s.add(uint32(v))
	}
	return s
}

func (s Set[E]) add(v uint32) Set[E] {
	if v < 64 {
		s.mask |= 1 << v
		return s
	}
	i, found := slices.BinarySearch(s.overflow, v)
	if found {
		return s
	}
	next := make([]uint32, 0, len(s.overflow)+1)
	next = append(next, s.overflow[:i]...)
	next = append(next, v)
	next = append(next, s.overflow[i:]...)
	s.overflow = next
	return s
}

// With returns a copy of s with v added.
func (s Set[E]) With(v E) Set[E] {
	return s.add(uint32(v))
}

// Contains reports whether v is in the set.
func (s Set[E]) Contains(v E) bool {
	u := uint32(v)
	if u < 64 {
		return s.mask&(1<<u) != 0
	}
	_, found := slices.BinarySearch(s.overflow, u)
	return found
}

// IsEmpty reports whether the set has no members.
func (s Set[E]) IsEmpty() bool {
	return s.mask == 0 && len(s.overflow) == 0
}

// Len returns the number of members.
func (s Set[E]) Len() int {
	n := 0
	for m := s.mask; m != 0; m &= m - 1 {
		n++
	}
	return n + len(s.overflow)
}

// Union returns the set of values in s or o.
func (s Set[E]) Union(o Set[E]) Set[E] {
	out := Set[E]{mask: s.mask | o.mask}
	if len(s.overflow) == 0 {
		out.overflow = o.overflow
		return out
	}
	if len(o.overflow) == 0 {
		out.overflow = s.overflow
		return out
	}
	merged := make([]uint32, 0, len(s.overflow)+len(o.overflow))
	i, j := 0, 0
	for i < len(s.overflow) && j < len(o.overflow) {
		switch a, b := s.overflow[i], o.overflow[j]; {
		case a < b:
			merged = append(merged, a)
			i++
		case a > b:
			merged = append(merged, b)
			j++
		default:
			merged = append(merged, a)
			i++
			j++
		}
	}
	merged = append(merged, s.overflow[i:]...)
	merged = append(merged, o.overflow[j:]...)
	out.overflow = merged
	return out
}

// Intersects reports whether s and o share at least one member.
func (s Set[E]) Intersects(o Set[E]) bool {
	if s.mask&o.mask != 0 {
		return true
	}
	i, j := 0, 0
	for i < len(s.overflow) && j < len(o.overflow) {
		switch a, b := s.overflow[i], o.overflow[j]; {
		case a < b:
			i++
		case a > b:
			j++
		default:
			return true
		}
	}
	return false
}

// Equal reports whether s and o have the same members.
func (s Set[E]) Equal(o Set[E]) bool {
	return s.mask == o.mask && slices.Equal(s.overflow, o.overflow)
}

// Values returns the members in ascending order.
func (s Set[E]) Values() []E {
	out := make([]E, 0, s.Len())
	for v := uint32(0); v < 64; v++ {
		if s.mask&(1<<v) != 0 {
			out = append(out, E(v))
		}
	}
	for _, v := range s.overflow {
		out = append(out, E(v))
	}
	return out
}

// Format renders the members with name, e.g. "{Shader|Kernel}".
func (s Set[E]) Format(name func(E) string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, v := range s.Values() {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(name(v))
	}
	b.WriteByte('}')
	return b.String()
}
