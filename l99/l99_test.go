package l99_test

import (
	"testing"

	g "github.com/anacrolix/generics"
	"github.com/stretchr/testify/assert"

	"github.com/percona-lab/l99/l99"
	"github.com/percona-lab/l99/list"
)

func TestLast(t *testing.T) {
	t.Parallel()

	assert.Equal(t, g.Some(3), l99.Last(list.Of(1, 2, 3)))
	assert.Equal(t, g.Some(1), l99.Last(list.Of(1)))
	assert.Equal(t, g.None[int](), l99.Last(list.Of[int]()))
}

func TestLastButOne(t *testing.T) {
	t.Parallel()

	assert.Equal(t, g.Some(2), l99.LastButOne(list.Of(1, 2, 3)))
	assert.Equal(t, g.Some(1), l99.LastButOne(list.Of(1, 2)))
	assert.Equal(t, g.None[int](), l99.LastButOne(list.Of(3)))
	assert.Equal(t, g.None[int](), l99.LastButOne(list.Of[int]()))
}

func TestKth(t *testing.T) {
	t.Parallel()

	l := list.Of(1, 2, 3)

	assert.Equal(t, g.Some(1), l99.Kth(l, 0))
	assert.Equal(t, g.Some(3), l99.Kth(l, 2))
	assert.Equal(t, g.None[int](), l99.Kth(l, 3))
	assert.Equal(t, g.None[int](), l99.Kth(l, 5))
	assert.Equal(t, g.None[int](), l99.Kth(list.Of[int](), 0))
}

func TestLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint(0), l99.Length(list.Of[int]()))
	assert.Equal(t, uint(1), l99.Length(list.Of("a")))
	assert.Equal(t, uint(3), l99.Length(list.Of(1, 2, 3)))
}

func TestReverse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   []int
		want []int
	}{
		{nil, []int{}},
		{[]int{1}, []int{1}},
		{[]int{1, 2}, []int{2, 1}},
		{[]int{1, 2, 3}, []int{3, 2, 1}},
	}

	for _, tt := range tests {
		in := list.FromSlice(tt.in)
		got := l99.Reverse(in)
		assert.Equal(t, tt.want, got.Slice(), "reverse %v", tt.in)
		assert.True(t, list.Equal(in, list.FromSlice(tt.in)), "input modified: %v", tt.in)
	}

	assert.True(t, list.Equal(list.Of[int](), l99.Reverse(list.Of[int]())))
}

func TestLongList(t *testing.T) {
	t.Parallel()

	const n = 1_000_000

	vals := make([]int, n)
	for i := range vals {
		vals[i] = i
	}
	l := list.FromSlice(vals)

	assert.Equal(t, uint(n), l99.Length(l))
	assert.Equal(t, g.Some(n-1), l99.Last(l))
	assert.Equal(t, g.Some(n-2), l99.LastButOne(l))
	assert.Equal(t, g.Some(n/2), l99.Kth(l, n/2))
	assert.Equal(t, g.Some(0), l99.Last(l99.Reverse(l)))
}

func TestProperties(t *testing.T) {
	t.Parallel()

	inputs := [][]int{{}, {9}, {4, 8}, {1, 2, 3}, {5, 5, 5, 5}, {3, 1, 4, 1, 5, 9, 2, 6}}

	for _, vals := range inputs {
		l := list.FromSlice(vals)
		n := l99.Length(l)

		assert.True(t, list.Equal(l, l99.Reverse(l99.Reverse(l))), "involution %v", vals)
		assert.Equal(t, n, l99.Length(l99.Reverse(l)), "length %v", vals)
		assert.Equal(t, g.None[int](), l99.Kth(l, n), "out of range %v", vals)
		assert.Equal(t, g.None[int](), l99.Kth(l, n+10), "out of range %v", vals)

		if n == 0 {
			assert.False(t, l99.Last(l).Ok)
			continue
		}
		assert.Equal(t, l99.Kth(l, n-1), l99.Last(l), "last %v", vals)

		if n < 2 {
			assert.False(t, l99.LastButOne(l).Ok)
			continue
		}
		assert.Equal(t, l99.Kth(l, n-2), l99.LastButOne(l), "last but one %v", vals)
	}
}
