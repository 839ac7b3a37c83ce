package Ranges

import (
	"github.com/g-m-twostay/go-ranges/Ranges/Preds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"slices"
	"testing"
)

var testValues = []int{100, 1, 2, 3, 3, 4, 5, 6, 7, 8, 9, 10, 10, 11, 55, 3, 7, 22, 11}
var testValues2 = []int{200, 201, 201, 199, 220}

func fresh() []int {
	return slices.Clone(testValues)
}

func TestChain(t *testing.T) {
	var c Chain[int]
	require.True(t, c.Test(-1))
	calls := 0
	counted := func(p func(int) bool) Predicate[int] {
		return func(x int) bool { calls++; return p(x) }
	}
	c1 := c.Push(counted(Preds.Even[int]))
	c2 := c1.Push(counted(Preds.Greater(10)))
	require.Equal(t, 0, c.Len())
	require.Equal(t, 1, c1.Len())
	require.Equal(t, 2, c2.Len())

	assert.True(t, c2.Test(12))
	assert.False(t, c2.Test(4))
	calls = 0
	assert.False(t, c2.Test(13))
	assert.Equal(t, 1, calls, "must stop at the first failing predicate")
	assert.Equal(t, 0, c2.Clear().Len())
	assert.Equal(t, 2, c2.Len())
}

func TestFrom_ToSlice(t *testing.T) {
	s := fresh()
	assert.Equal(t, testValues, From(s).ToSlice())
	assert.Equal(t, testValues, s)
	assert.Equal(t, []int{}, From([]int{}).ToSlice())
	assert.True(t, From([]int(nil)).Empty())
}

func TestWhere(t *testing.T) {
	s := fresh()
	v := From(s)
	even := v.Where(Preds.Even[int])
	assert.Equal(t, []int{100, 2, 4, 6, 8, 10, 10, 22}, even.ToSlice())
	assert.Equal(t, []int{100, 22}, even.Where(Preds.Greater(10)).ToSlice())
	// branches don't share chains
	assert.Equal(t, []int{2, 4, 6, 8, 10, 10}, even.Where(Preds.Less(12)).ToSlice())
	assert.Equal(t, testValues, v.ToSlice())
	assert.Equal(t, 0, v.Chain().Len())
	assert.Equal(t, 1, even.Chain().Len())
	assert.Equal(t, testValues, s)
}

func TestWhere_Subsequence(t *testing.T) {
	s := fresh()
	for _, p := range []func(int) bool{Preds.Odd[int], Preds.Less(5), Preds.Equal(3), Preds.Greater(1000)} {
		var want []int
		for _, x := range s {
			if p(x) {
				want = append(want, x)
			}
		}
		got := From(s).Where(p).ToSlice()
		assert.Equal(t, want, append([]int(nil), got...))
	}
	assert.Equal(t, testValues, s)
}

func TestClearWhere(t *testing.T) {
	s := fresh()
	v := From(s).Where(Preds.Even[int]).ClearWhere()
	assert.Equal(t, 0, v.Chain().Len())
	assert.Equal(t, []int{100, 2, 4, 6, 8, 10, 10, 22}, v.ToSlice())
	// the checkpoint is the new baseline
	assert.Equal(t, []int{2, 4, 6, 8, 10, 10, 22}, v.Where(Preds.Less(50)).ToSlice())
	assert.Equal(t, v.ToSlice(), v.ClearWhere().ClearWhere().ToSlice())
	assert.Equal(t, testValues, s)
}

func TestEmpty(t *testing.T) {
	v := From(fresh()).Where(Preds.Greater(1000))
	assert.False(t, v.Empty(), "Empty doesn't realize")
	assert.Equal(t, 0, v.Len())
	assert.True(t, v.ClearWhere().Empty())
}

func TestAppend(t *testing.T) {
	a, b := fresh(), slices.Clone(testValues2)
	v := From(a).Append(b)
	assert.Equal(t, append(fresh(), testValues2...), v.ToSlice())
	assert.Equal(t, 19, From(a).Len())

	// the chain applies to appended elements too
	even := From(a).Where(Preds.Even[int]).Append(b)
	assert.Equal(t, 1, even.Chain().Len())
	assert.Equal(t, []int{100, 2, 4, 6, 8, 10, 10, 22, 200, 220}, even.ToSlice())
}

func TestCopyTo(t *testing.T) {
	v := From(fresh()).Where(Preds.Odd[int])
	dst := make([]int, 3)
	assert.Equal(t, 3, v.CopyTo(dst))
	assert.Equal(t, []int{1, 3, 3}, dst)
	dst = make([]int, 20)
	assert.Equal(t, 11, v.CopyTo(dst))
	assert.Equal(t, []int{1, 3, 3, 5, 7, 9, 11, 55, 3, 7, 11}, dst[:11])
	assert.Equal(t, 0, dst[11])
	assert.Equal(t, 0, v.CopyTo(nil))
}

func TestContains(t *testing.T) {
	v := From(fresh()).Where(Preds.Even[int])
	assert.True(t, v.Contains(22))
	assert.False(t, v.Contains(55), "55 is filtered out")
	assert.True(t, From(fresh()).Contains(55))
	assert.True(t, v.ContainsFunc(5, func(a, b int) bool { return a+1 == b }))
	assert.False(t, From([]int{}).Contains(0))
}

func TestCall_Each(t *testing.T) {
	s := fresh()
	var seen []int
	r := From(s).Where(Preds.Greater(20)).Each(func(x int) { seen = append(seen, x) })
	assert.Equal(t, []int{100, 55, 22}, seen)
	assert.Equal(t, 3, len(r.refs), "Each returns the realized View")

	calls := 0
	r = From(s).Where(Preds.Less(3)).Call(func(v View[int]) {
		calls++
		assert.Equal(t, []int{1, 2}, v.ToSlice())
	})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, len(r.refs))
	assert.Equal(t, 1, r.Chain().Len())
}

func TestStaleAppend(t *testing.T) {
	// Views keep pointing at the array they were built from.
	s := make([]int, 2, 2)
	v := From(s)
	s = append(s, 3)
	s[0] = 9
	assert.Equal(t, []int{0, 0}, v.ToSlice())
}

func TestScenario(t *testing.T) {
	a, b := fresh(), slices.Clone(testValues2)
	var printed []int
	tmp := From(a).Where(Preds.Even[int]).Mut().ForEach(func(x *int) { printed = append(printed, *x) }).ClearWhere()
	assert.Equal(t, []int{100, 2, 4, 6, 8, 10, 10, 22}, printed)
	got := tmp.Append(b).StableUnique().ToSlice()
	assert.Equal(t, []int{100, 2, 4, 6, 8, 10, 22, 200, 201, 199, 220}, got)
	assert.Equal(t, testValues, a)
	assert.Equal(t, testValues2, b)
}

type point struct{ x, y int }

func TestFromFunc(t *testing.T) {
	ps := []point{{3, 1}, {1, 2}, {3, 0}, {2, 9}, {1, 1}}
	byX := func(a, b point) bool { return a.x < b.x }
	v := FromFunc(ps, byX)
	assert.Equal(t, []point{{1, 2}, {1, 1}, {2, 9}, {3, 1}, {3, 0}}, v.StableSort().ToSlice())
	assert.Equal(t, []point{{3, 1}, {1, 2}, {2, 9}}, v.StableUnique().ToSlice())
	assert.True(t, v.Contains(point{2, 0}), "equal when neither is less")
	dups := v.Duplicates().ToSlice()
	require.Len(t, dups, 2)
	assert.Equal(t, 1, dups[0].x)
	assert.Equal(t, 3, dups[1].x)
	assert.Equal(t, []point{{3, 1}, {1, 2}}, v.StableDuplicates().ToSlice())
}
