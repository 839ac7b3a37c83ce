package Ranges

import "cmp"

// View is a filtered view of elements that live in a caller owned slice. It holds pointers
// into that slice plus a Chain of pending predicates that are applied lazily.
//
// A View is a value: every method returns a new View with its own copy of the pointers and
// the chain, and never changes the View it's called on. Methods that need the actual members
// realize first, dropping every pointer whose element fails the chain.
//
// The backing slice must outlive the View and must not be reallocated, truncated or reused
// while the View is in use. This isn't checked; a View over a reallocated slice keeps
// referencing the old array.
//
// The zero value isn't usable, create Views with From or FromFunc.
type View[T any] struct {
	refs  []*T
	chain Chain[T]
	less  Less[T]
	equal Equal[T]
}

// From creates a View over every element of s, in order, using the natural ordering of T.
func From[T cmp.Ordered](s []T) View[T] {
	return View[T]{
		refs:  refsOf(s, nil),
		less:  cmp.Less[T],
		equal: func(a, b T) bool { return cmp.Compare(a, b) == 0 },
	}
}

// FromFunc creates a View over every element of s, in order. less is the default ordering of
// the View; elements are considered equal when neither is less than the other.
func FromFunc[T any](s []T, less Less[T]) View[T] {
	return View[T]{refs: refsOf(s, nil), less: less, equal: equivOf(less)}
}

func refsOf[T any](s []T, refs []*T) []*T {
	if refs == nil {
		refs = make([]*T, 0, len(s))
	}
	for i := range s {
		refs = append(refs, &s[i])
	}
	return refs
}

// clone copies the pointers and the chain so that the result shares no state with u.
func (u View[T]) clone() View[T] {
	refs := make([]*T, len(u.refs))
	copy(refs, u.refs)
	u.refs = refs
	u.chain.preds = append([]Predicate[T](nil), u.chain.preds...)
	return u
}

// realize removes, in place and in one pass, every pointer whose element fails the chain.
// Survivors keep their relative order. The chain is kept.
func (u *View[T]) realize() {
	if u.chain.Len() == 0 {
		return
	}
	n := 0
	for _, r := range u.refs {
		if u.chain.Test(*r) {
			u.refs[n] = r
			n++
		}
	}
	clear(u.refs[n:])
	u.refs = u.refs[:n]
}

// realized is a realized private copy of u.
func (u View[T]) realized() View[T] {
	r := u.clone()
	r.realize()
	return r
}

// Where adds p to the chain. Nothing is removed until the View is realized.
func (u View[T]) Where(p Predicate[T]) View[T] {
	r := u.clone()
	r.chain = r.chain.Push(p)
	return r
}

// ClearWhere realizes and then empties the chain, so the current members become the new baseline.
func (u View[T]) ClearWhere() View[T] {
	r := u.realized()
	r.chain = r.chain.Clear()
	return r
}

// Chain returns the pending predicates.
func (u View[T]) Chain() Chain[T] {
	return u.chain
}

// Append pointers to every element of s after the current ones. s may be a different slice.
// The chain is kept and applies to the appended elements too.
func (u View[T]) Append(s []T) View[T] {
	r := u.clone()
	r.refs = refsOf(s, r.refs)
	return r
}

// Empty reports whether the View has no pointers. It doesn't realize, so a View whose chain
// excludes everything is not Empty until it's realized.
func (u View[T]) Empty() bool {
	return len(u.refs) == 0
}

// Len is the number of members after realization.
func (u View[T]) Len() (n int) {
	for _, r := range u.refs {
		if u.chain.Test(*r) {
			n++
		}
	}
	return
}

// ToSlice copies the values of the members into a new slice, in order.
func (u View[T]) ToSlice() []T {
	r := u.realized()
	s := make([]T, len(r.refs))
	for i, p := range r.refs {
		s[i] = *p
	}
	return s
}

// CopyTo copies the values of the members into dst, up to the shorter of the two. Returns the number copied.
func (u View[T]) CopyTo(dst []T) int {
	r := u.realized()
	n := min(len(r.refs), len(dst))
	for i, p := range r.refs[:n] {
		dst[i] = *p
	}
	return n
}

// Contains reports whether any member equals v under the default equality.
func (u View[T]) Contains(v T) bool {
	return u.ContainsFunc(v, u.equal)
}

// ContainsFunc reports whether any member equals v under eq.
func (u View[T]) ContainsFunc(v T, eq Equal[T]) bool {
	for _, r := range u.refs {
		if u.chain.Test(*r) && eq(v, *r) {
			return true
		}
	}
	return false
}

// Each calls f with the value of every member, in order, and returns the realized View.
// f gets a copy, use Mut().ForEach to change elements.
func (u View[T]) Each(f func(T)) View[T] {
	r := u.realized()
	for _, p := range r.refs {
		f(*p)
	}
	return r
}

// Call f with the realized View and return it.
func (u View[T]) Call(f func(View[T])) View[T] {
	r := u.realized()
	f(r)
	return r
}
