package Ranges

// Predicate reports whether an element is included.
type Predicate[T any] func(T) bool

// Less is a strict weak ordering on T.
type Less[T any] func(a, b T) bool

// Equal is an equivalence relation on T.
type Equal[T any] func(a, b T) bool

// Chain of predicates combined with AND. The zero value is an empty chain that includes everything.
// A Chain is never modified in place once shared; Push copies.
type Chain[T any] struct {
	preds []Predicate[T]
}

// Push returns a new chain that is u extended with p. u is unchanged.
func (u Chain[T]) Push(p Predicate[T]) Chain[T] {
	preds := make([]Predicate[T], len(u.preds), len(u.preds)+1)
	copy(preds, u.preds)
	return Chain[T]{preds: append(preds, p)}
}

// Test v against every predicate in order, stopping at the first one that fails.
func (u Chain[T]) Test(v T) bool {
	for _, p := range u.preds {
		if !p(v) {
			return false
		}
	}
	return true
}

// Clear returns an empty chain.
func (u Chain[T]) Clear() Chain[T] {
	return Chain[T]{}
}

// Len is the number of predicates.
func (u Chain[T]) Len() int {
	return len(u.preds)
}

// cmpOf turns a Less into a three-way comparison on references for the slices package.
func cmpOf[T any](less Less[T]) func(a, b *T) int {
	return func(a, b *T) int {
		if less(*a, *b) {
			return -1
		} else if less(*b, *a) {
			return 1
		}
		return 0
	}
}

// equivOf derives equality from an ordering: a==b iff neither is less than the other.
func equivOf[T any](less Less[T]) Equal[T] {
	return func(a, b T) bool {
		return !less(a, b) && !less(b, a)
	}
}
