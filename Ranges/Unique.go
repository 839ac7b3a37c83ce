package Ranges

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"slices"
)

const dupTreeDegree = 8

// Unique drops every member equal to the last member kept, so each run of equal members keeps only its first.
// Only removes all duplicates when the members are sorted.
func (u View[T]) Unique() View[T] {
	return u.UniqueFunc(u.equal)
}

// UniqueFunc is Unique using eq. Members are compared with the last kept one, not their original neighbor,
// which matters only when eq isn't transitive.
func (u View[T]) UniqueFunc(eq Equal[T]) View[T] {
	r := u.realized()
	if len(r.refs) == 0 {
		return r
	}
	n := 1
	for _, ref := range r.refs[1:] {
		if !eq(*r.refs[n-1], *ref) {
			r.refs[n] = ref
			n++
		}
	}
	clear(r.refs[n:])
	r.refs = r.refs[:n]
	return r
}

// SortedUnique sorts and then drops duplicates, using the default ordering and equality.
func (u View[T]) SortedUnique() View[T] {
	return u.SortedUniqueFunc(u.less, u.equal)
}

// SortedUniqueFunc is SortedUnique sorting by less and comparing with eq.
func (u View[T]) SortedUniqueFunc(less Less[T], eq Equal[T]) View[T] {
	return u.SortFunc(less).UniqueFunc(eq)
}

// StableUnique keeps the first occurrence of every distinct member and drops later ones, keeping the order.
// Distinct is decided by the default ordering.
// Time: O(n log(n))
func (u View[T]) StableUnique() View[T] {
	r := u.realized()
	less := u.less
	seen := treeset.NewWith(func(a, b interface{}) int {
		x, y := a.(T), b.(T)
		if less(x, y) {
			return -1
		} else if less(y, x) {
			return 1
		}
		return 0
	})
	n := 0
	for _, ref := range r.refs {
		if !seen.Contains(*ref) {
			seen.Add(*ref)
			r.refs[n] = ref
			n++
		}
	}
	clear(r.refs[n:])
	r.refs = r.refs[:n]
	return r
}

// StableUniqueFunc is StableUnique comparing with eq. eq gives no ordering so every member is checked against every kept one.
// Time: O(n^2)
func (u View[T]) StableUniqueFunc(eq Equal[T]) View[T] {
	r := u.realized()
	n := 0
	for _, ref := range r.refs {
		if !slices.ContainsFunc(r.refs[:n], func(k *T) bool { return eq(*ref, *k) }) {
			r.refs[n] = ref
			n++
		}
	}
	clear(r.refs[n:])
	r.refs = r.refs[:n]
	return r
}

// Duplicates sorts the members and keeps one member for every value that occurs more than once.
// The result is sorted.
func (u View[T]) Duplicates() View[T] {
	return u.DuplicatesFunc(u.equal)
}

// DuplicatesFunc is Duplicates with runs of equal members decided by eq.
func (u View[T]) DuplicatesFunc(eq Equal[T]) View[T] {
	r := u.Sort()
	n := 0
	for i := 0; i < len(r.refs); {
		j := i + 1
		for j < len(r.refs) && eq(*r.refs[i], *r.refs[j]) {
			j++
		}
		if j-i > 1 {
			r.refs[n] = r.refs[i]
			n++
		}
		i = j
	}
	clear(r.refs[n:])
	r.refs = r.refs[:n]
	return r
}

// StableDuplicates keeps the first occurrence of every value that occurs more than once, in the original order.
// The chain of the result is empty.
func (u View[T]) StableDuplicates() View[T] {
	dups := btree.NewG(dupTreeDegree, btree.LessFunc[T](u.less))
	for _, ref := range u.Duplicates().refs {
		dups.ReplaceOrInsert(*ref)
	}
	return u.Where(dups.Has).StableUnique().ClearWhere()
}

// StableDuplicatesFunc is StableDuplicates comparing with eq.
func (u View[T]) StableDuplicatesFunc(eq Equal[T]) View[T] {
	dups := u.DuplicatesFunc(eq)
	return u.Where(func(v T) bool { return dups.ContainsFunc(v, eq) }).StableUniqueFunc(eq).ClearWhere()
}
