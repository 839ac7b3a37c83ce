package Ranges

// SetUnion has the members of u and o. A value occurring a times in u and b times in o occurs max(a,b) times.
func (u View[T]) SetUnion(o View[T]) View[T] {
	return u.SetUnionFunc(o, u.less)
}

// SetUnionFunc is SetUnion ordered by less.
func (u View[T]) SetUnionFunc(o View[T], less Less[T]) View[T] {
	return merge(u, o, less, true, true, true)
}

// SetIntersection has the members of u that are also in o. A value occurs min(a,b) times.
func (u View[T]) SetIntersection(o View[T]) View[T] {
	return u.SetIntersectionFunc(o, u.less)
}

// SetIntersectionFunc is SetIntersection ordered by less.
func (u View[T]) SetIntersectionFunc(o View[T], less Less[T]) View[T] {
	return merge(u, o, less, false, false, true)
}

// SetDifference has the members of u that aren't in o. A value occurs max(a-b,0) times.
func (u View[T]) SetDifference(o View[T]) View[T] {
	return u.SetDifferenceFunc(o, u.less)
}

// SetDifferenceFunc is SetDifference ordered by less.
func (u View[T]) SetDifferenceFunc(o View[T], less Less[T]) View[T] {
	return merge(u, o, less, true, false, false)
}

// SetSymmetricDifference has the members that are in exactly one of u and o. A value occurs |a-b| times.
func (u View[T]) SetSymmetricDifference(o View[T]) View[T] {
	return merge(u, o, u.less, true, true, false)
}

// merge realizes and sorts u and o by less and walks them together. onlyA, onlyB and both select
// which of the three kinds of positions are written to the output.
// Equal members are matched one to one, like multisets, and matched members are taken from u.
// The result is sorted and has an empty chain: both sides are realized before merging, so
// neither chain has anything left to filter.
// Time: O(n log(n) + m log(m)) to sort, O(n+m) to merge.
func merge[T any](u, o View[T], less Less[T], onlyA, onlyB, both bool) View[T] {
	a, b := u.SortFunc(less).refs, o.SortFunc(less).refs
	out := make([]*T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if less(*a[i], *b[j]) {
			if onlyA {
				out = append(out, a[i])
			}
			i++
		} else if less(*b[j], *a[i]) {
			if onlyB {
				out = append(out, b[j])
			}
			j++
		} else {
			if both {
				out = append(out, a[i])
			}
			i++
			j++
		}
	}
	if onlyA {
		out = append(out, a[i:]...)
	}
	if onlyB {
		out = append(out, b[j:]...)
	}
	return View[T]{refs: out, less: u.less, equal: u.equal}
}
