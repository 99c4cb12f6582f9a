package l99

import (
	g "github.com/anacrolix/generics"

	"github.com/percona-lab/l99/list"
)

// Option is an element that may be absent.
type Option[E any] = g.Option[E]

// Last returns the final element of l.
func Last[E any](l list.List[E]) Option[E] {
	for {
		x, xs, ok := l.Uncons()
		if !ok {
			return g.None[E]()
		}

		if xs.IsNil() {
			return g.Some(x)
		}

		l = xs
	}
}

// LastButOne returns the second-to-last element of l.
// A list of fewer than two elements has none.
func LastButOne[E any](l list.List[E]) Option[E] {
	for {
		x, xs, ok := l.Uncons()
		if !ok {
			return g.None[E]()
		}

		_, rest, ok := xs.Uncons()
		if !ok {
			return g.None[E]() // single element
		}

		if rest.IsNil() {
			return g.Some(x)
		}

		l = xs
	}
}

// Kth returns the element at the 0-based position pos.
// It returns none when pos is out of range.
func Kth[E any](l list.List[E], pos uint) Option[E] {
	for {
		x, xs, ok := l.Uncons()
		if !ok {
			return g.None[E]()
		}

		if pos == 0 {
			return g.Some(x)
		}

		l, pos = xs, pos-1
	}
}

// Length returns the number of elements in l.
func Length[E any](l list.List[E]) uint {
	var n uint
	for _, xs, ok := l.Uncons(); ok; _, xs, ok = xs.Uncons() {
		n++
	}

	return n
}

// Reverse returns a new list with the elements of l in reverse order.
// Each element is moved from the head of the remaining input onto the head
// of an accumulator, in a single pass.
func Reverse[E any](l list.List[E]) list.List[E] {
	res := list.Nil[E]()
	for from := l; ; {
		x, xs, ok := from.Uncons()
		if !ok {
			return res
		}

		res = list.Cons(x, res)
		from = xs
	}
}
