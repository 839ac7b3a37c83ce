// Package Preds has factories for the predicates accepted by Ranges.View.Where, Partition and ReplaceIf.
package Preds

import (
	"cmp"
	"golang.org/x/exp/constraints"
)

// Less than v.
func Less[T cmp.Ordered](v T) func(T) bool {
	return func(x T) bool { return x < v }
}

// LessOrEqual to v.
func LessOrEqual[T cmp.Ordered](v T) func(T) bool {
	return func(x T) bool { return x <= v }
}

// Greater than v.
func Greater[T cmp.Ordered](v T) func(T) bool {
	return func(x T) bool { return x > v }
}

// GreaterOrEqual to v.
func GreaterOrEqual[T cmp.Ordered](v T) func(T) bool {
	return func(x T) bool { return x >= v }
}

// Equal to v.
func Equal[T comparable](v T) func(T) bool {
	return func(x T) bool { return x == v }
}

// NotEqual to v.
func NotEqual[T comparable](v T) func(T) bool {
	return func(x T) bool { return x != v }
}

// Compared reports comp(x, v), for orderings other than the natural one.
func Compared[T any](v T, comp func(a, b T) bool) func(T) bool {
	return func(x T) bool { return comp(x, v) }
}

func Not[T any](p func(T) bool) func(T) bool {
	return func(x T) bool { return !p(x) }
}

func And[T any](l, r func(T) bool) func(T) bool {
	return func(x T) bool { return l(x) && r(x) }
}

func Or[T any](l, r func(T) bool) func(T) bool {
	return func(x T) bool { return l(x) || r(x) }
}

// AllOf is true when every p is true, it's true for no p.
func AllOf[T any](ps ...func(T) bool) func(T) bool {
	return func(x T) bool {
		for _, p := range ps {
			if !p(x) {
				return false
			}
		}
		return true
	}
}

// AnyOf is true when some p is true, it's false for no p.
func AnyOf[T any](ps ...func(T) bool) func(T) bool {
	return func(x T) bool {
		for _, p := range ps {
			if p(x) {
				return true
			}
		}
		return false
	}
}

// NoneOf is true when every p is false.
func NoneOf[T any](ps ...func(T) bool) func(T) bool {
	return Not(AnyOf(ps...))
}

func Even[T constraints.Integer](x T) bool {
	return x%2 == 0
}

func Odd[T constraints.Integer](x T) bool {
	return x%2 != 0
}
