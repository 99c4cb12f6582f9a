package list_test

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/percona-lab/l99/list"
)

func TestOf(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		l := list.Of[int]()
		assert.True(t, l.IsNil())
		assert.True(t, list.Equal(l, list.Nil[int]()))
	})

	t.Run("order", func(t *testing.T) {
		t.Parallel()

		l := list.Of(1, 2, 3)
		want := list.Cons(1, list.Cons(2, list.Cons(3, list.Nil[int]())))
		assert.True(t, list.Equal(want, l))
		assert.Equal(t, want, l)
	})
}

func TestIter(t *testing.T) {
	t.Parallel()

	it := list.Of(1, 2, 3, 4).Iter()

	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	// exhausted stays exhausted
	for range 3 {
		v, ok := it.Next()
		assert.False(t, ok)
		assert.Zero(t, v)
	}
	assert.True(t, it.Rest().IsNil())
}

func TestAll(t *testing.T) {
	t.Parallel()

	t.Run("in order", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(list.Of(1, 2, 3, 4).All()))
	})

	t.Run("early break", func(t *testing.T) {
		t.Parallel()

		var got []string
		for v := range list.Of("a", "b", "c").All() {
			got = append(got, v)
			if v == "b" {
				break
			}
		}
		assert.Equal(t, []string{"a", "b"}, got)
	})
}

func TestCollect(t *testing.T) {
	t.Parallel()

	t.Run("from slice values", func(t *testing.T) {
		t.Parallel()

		l := list.Collect(slices.Values([]int{1, 2, 3, 4}))
		assert.True(t, list.Equal(list.Of(1, 2, 3, 4), l))
		assert.Equal(t, []int{1, 2, 3, 4}, l.Slice())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		assert.True(t, list.Collect(slices.Values([]int(nil))).IsNil())
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		for _, vals := range [][]int{{}, {7}, {1, 2}, {5, 4, 3, 2, 1}} {
			l := list.FromSlice(vals)
			assert.True(t, list.Equal(l, list.Collect(l.All())), "%v", vals)
			assert.Equal(t, vals, list.Collect(slices.Values(vals)).Slice())
		}
	})
}

func TestUncons(t *testing.T) {
	t.Parallel()

	head, tail, ok := list.Of(1, 2).Uncons()
	require.True(t, ok)
	assert.Equal(t, 1, head)
	assert.True(t, list.Equal(list.Of(2), tail))

	_, _, ok = list.Nil[int]().Uncons()
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	shared := list.Of(3, 4)

	assert.True(t, list.Equal(list.Cons(1, shared), list.Cons(1, shared)))
	assert.False(t, list.Equal(list.Cons(1, shared), list.Cons(2, shared)))
	assert.False(t, list.Equal(list.Of(1, 2), list.Of(1, 2, 3)))
	assert.False(t, list.Equal(list.Of(1), list.Nil[int]()))
	assert.True(t, list.EqualFunc(list.Of(1, 2), list.Of(-1, -2), func(a, b int) bool {
		return a == -b
	}))
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "[]", list.Nil[int]().String())
	assert.Equal(t, "[1 2 3]", list.Of(1, 2, 3).String())
	assert.Equal(t, "Nil", list.Nil[int]().GoString())
	assert.Equal(t, "Cons(1, Cons(2, Nil))", list.Of(1, 2).GoString())
	assert.Equal(t, `Cons("a", Nil)`, list.Of("a").GoString())
}

func TestJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(list.Of(1, 2, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `[1,2,3]`, string(data))

	data, err = json.Marshal(list.Nil[int]())
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))

	var l list.List[int]
	require.NoError(t, json.Unmarshal([]byte(`[3,2,1]`), &l))
	assert.Equal(t, []int{3, 2, 1}, l.Slice())

	require.NoError(t, json.Unmarshal([]byte(`null`), &l))
	assert.True(t, l.IsNil())

	assert.Error(t, json.Unmarshal([]byte(`{"a":1}`), &l))
}

func TestBSON(t *testing.T) {
	t.Parallel()

	type doc struct {
		Items list.List[string] `bson:"items"`
	}

	data, err := bson.Marshal(doc{Items: list.Of("x", "y", "z")})
	require.NoError(t, err)

	items, err := bson.Raw(data).LookupErr("items")
	require.NoError(t, err)
	assert.Equal(t, bson.TypeArray, items.Type)

	var got doc
	require.NoError(t, bson.Unmarshal(data, &got))
	assert.Equal(t, []string{"x", "y", "z"}, got.Items.Slice())

	data, err = bson.Marshal(doc{})
	require.NoError(t, err)

	got = doc{Items: list.Of("stale")}
	require.NoError(t, bson.Unmarshal(data, &got))
	assert.True(t, got.Items.IsNil())
}
