// Package slotset provides a dense, bitset-backed representation of optical
// slot-id sets: the spectrum grid a WDM system allocates against is a small,
// fixed range of non-negative integers, which makes a bitset a better fit
// than a map or sorted slice for the occupation bookkeeping in package
// spectrum.
//
// All mutating methods operate in place; Clone/Union/Intersect/Difference
// return a fresh Set so callers can compose without aliasing surprises.
// Iteration (Slice, ForEachAscending) always proceeds in ascending slot-id
// order, matching the ordering contract the rest of the core relies on for
// deterministic first-fit scans.
package slotset

import (
	"sort"

	"github.com/bits-and-blooms/bitset"
)

// Set is a mutable collection of non-negative slot ids.
type Set struct {
	bits *bitset.BitSet
}

// New returns an empty Set.
func New() *Set {
	return &Set{bits: bitset.New(0)}
}

// Of builds a Set containing exactly the given ids (duplicates collapse).
func Of(ids ...int) *Set {
	s := New()
	s.Add(ids...)
	return s
}

// FromRange builds a Set containing every id in [lo, hi] inclusive.
// Returns an empty Set if hi < lo.
func FromRange(lo, hi int) *Set {
	s := New()
	for id := lo; id <= hi; id++ {
		s.add1(id)
	}
	return s
}

func (s *Set) add1(id int) {
	if id < 0 {
		return
	}
	s.bits.Set(uint(id))
}

// Add inserts zero or more slot ids into the set.
func (s *Set) Add(ids ...int) {
	for _, id := range ids {
		s.add1(id)
	}
}

// Remove deletes id from the set, if present.
func (s *Set) Remove(id int) {
	if id < 0 {
		return
	}
	s.bits.Clear(uint(id))
}

// Contains reports whether id is a member of the set.
func (s *Set) Contains(id int) bool {
	if id < 0 {
		return false
	}
	return s.bits.Test(uint(id))
}

// Len returns the number of member ids.
func (s *Set) Len() int {
	return int(s.bits.Count())
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.bits.None()
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{bits: s.bits.Clone()}
}

// Union returns a new Set containing the members of both s and other.
func (s *Set) Union(other *Set) *Set {
	return &Set{bits: s.bits.Union(other.bits)}
}

// Intersect returns a new Set containing only ids present in both s and other.
func (s *Set) Intersect(other *Set) *Set {
	return &Set{bits: s.bits.Intersection(other.bits)}
}

// Difference returns a new Set with every id of s that is not in other.
func (s *Set) Difference(other *Set) *Set {
	return &Set{bits: s.bits.Difference(other.bits)}
}

// Equal reports whether s and other contain exactly the same ids.
func (s *Set) Equal(other *Set) bool {
	return s.bits.Equal(other.bits)
}

// Slice returns the member ids in ascending order. The result is a fresh
// slice safe for the caller to mutate.
func (s *Set) Slice() []int {
	out := make([]int, 0, s.Len())
	for id, ok := s.bits.NextSet(0); ok; id, ok = s.bits.NextSet(id + 1) {
		out = append(out, int(id))
	}
	return out
}

// ForEachAscending calls fn for every member id in ascending order, stopping
// early if fn returns false.
func (s *Set) ForEachAscending(fn func(id int) bool) {
	for id, ok := s.bits.NextSet(0); ok; id, ok = s.bits.NextSet(id + 1) {
		if !fn(int(id)) {
			return
		}
	}
}

// Min returns the smallest member id and true, or (0, false) if empty.
func (s *Set) Min() (int, bool) {
	id, ok := s.bits.NextSet(0)
	return int(id), ok
}

// IntersectAll intersects a non-empty list of sets; panics if sets is empty
// (callers must have already validated non-emptiness, per EmptyFiberSet
// style checks upstream).
func IntersectAll(sets []*Set) *Set {
	out := sets[0].Clone()
	for _, s := range sets[1:] {
		out = out.Intersect(s)
	}
	return out
}

// UnionAll unions zero or more sets; returns an empty Set for an empty list.
func UnionAll(sets []*Set) *Set {
	out := New()
	for _, s := range sets {
		out = out.Union(s)
	}
	return out
}

// SortedCopy returns a new ascending copy of ids; duplicates are kept.
// Kept as a small helper for callers assembling ids from non-Set sources.
func SortedCopy(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)
	return out
}
