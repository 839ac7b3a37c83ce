package Ranges

import (
	Go_Ranges "github.com/g-m-twostay/go-ranges"
	"slices"
)

// The methods in this file only rearrange or drop pointers. They never write through them.

// Sort the members into ascending order using the default ordering. Equal members may be reordered.
func (u View[T]) Sort() View[T] {
	return u.SortFunc(u.less)
}

// SortFunc is Sort using less.
func (u View[T]) SortFunc(less Less[T]) View[T] {
	r := u.realized()
	slices.SortFunc(r.refs, cmpOf(less))
	return r
}

// StableSort is Sort that keeps the relative order of equal members.
func (u View[T]) StableSort() View[T] {
	return u.StableSortFunc(u.less)
}

// StableSortFunc is StableSort using less.
func (u View[T]) StableSortFunc(less Less[T]) View[T] {
	r := u.realized()
	slices.SortStableFunc(r.refs, cmpOf(less))
	return r
}

// Partition moves the members that satisfy p before those that don't. Order within each group isn't kept.
// Time: O(n); Space: O(1)
func (u View[T]) Partition(p Predicate[T]) View[T] {
	r := u.realized()
	for i, j := 0, len(r.refs)-1; ; i, j = i+1, j-1 {
		for i <= j && p(*r.refs[i]) {
			i++
		}
		for i <= j && !p(*r.refs[j]) {
			j--
		}
		if i >= j {
			break
		}
		r.refs[i], r.refs[j] = r.refs[j], r.refs[i]
	}
	return r
}

// StablePartition is Partition that keeps the relative order within each group. p is called once per member.
// Time: O(n); Space: O(n)
func (u View[T]) StablePartition(p Predicate[T]) View[T] {
	r := u.realized()
	marks := Go_Ranges.NewBitArray(len(r.refs))
	refs := make([]*T, 0, len(r.refs))
	for i, ref := range r.refs {
		if p(*ref) {
			marks.Set(i)
			refs = append(refs, ref)
		}
	}
	for i, ref := range r.refs {
		if !marks.Get(i) {
			refs = append(refs, ref)
		}
	}
	r.refs = refs
	return r
}

// Reverse the order of the members.
func (u View[T]) Reverse() View[T] {
	r := u.realized()
	slices.Reverse(r.refs)
	return r
}

// RandomShuffle permutes the members uniformly at random using the runtime's fast non-cryptographic generator.
func (u View[T]) RandomShuffle() View[T] {
	return u.RandomShuffleFunc(func(n int) int {
		return int(Go_Ranges.CheapRandN(uint32(n)))
	})
}

// RandomShuffleFunc permutes the members with rnd, which must return a number in [0,n).
func (u View[T]) RandomShuffleFunc(rnd func(n int) int) View[T] {
	r := u.realized()
	for i := len(r.refs) - 1; i > 0; i-- {
		j := rnd(i + 1)
		r.refs[i], r.refs[j] = r.refs[j], r.refs[i]
	}
	return r
}
