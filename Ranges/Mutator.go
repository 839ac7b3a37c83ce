package Ranges

// Mutator groups the operations that write to the backing slice through a View's pointers.
// Every method realizes first, writes only to members, and returns the realized View.
type Mutator[T any] struct {
	v View[T]
}

// Mut returns the value-mutating operations of u.
func (u View[T]) Mut() Mutator[T] {
	return Mutator[T]{v: u}
}

// ForEach calls f with a pointer to every member, in order. Writes through the pointer change the backing slice.
func (u Mutator[T]) ForEach(f func(*T)) View[T] {
	r := u.v.realized()
	for _, p := range r.refs {
		f(p)
	}
	return r
}

// Replace every member equal to oldVal with newVal, using the default equality.
func (u Mutator[T]) Replace(oldVal, newVal T) View[T] {
	return u.ReplaceFunc(oldVal, newVal, u.v.equal)
}

// ReplaceFunc is Replace comparing with eq.
func (u Mutator[T]) ReplaceFunc(oldVal, newVal T, eq Equal[T]) View[T] {
	return u.ReplaceIf(func(v T) bool { return eq(v, oldVal) }, newVal)
}

// ReplaceIf sets every member that satisfies p to newVal.
func (u Mutator[T]) ReplaceIf(p Predicate[T], newVal T) View[T] {
	return u.ForEach(func(v *T) {
		if p(*v) {
			*v = newVal
		}
	})
}
