package list

import (
	"fmt"
	"iter"
	"strings"
)

// List is an immutable singly linked list.
//
// A List is either Nil (the zero value) or a Cons cell holding a value and the
// rest of the list. Cells are never modified after construction, so a List may
// be shared and reused freely.
type List[E any] struct {
	cell *cell[E]
}

// cell is a Cons node. rest is always strictly shorter than the list it belongs to.
type cell[E any] struct {
	val  E
	rest List[E]
}

// Nil returns the empty list.
func Nil[E any]() List[E] {
	return List[E]{}
}

// Cons returns a new list with val as the head and rest as the tail.
func Cons[E any](val E, rest List[E]) List[E] {
	return List[E]{cell: &cell[E]{val: val, rest: rest}}
}

// Of returns a list of vals in argument order. Of() is Nil.
func Of[E any](vals ...E) List[E] {
	return FromSlice(vals)
}

// FromSlice returns a list holding the elements of s in order.
func FromSlice[E any](s []E) List[E] {
	var l List[E]
	for i := len(s) - 1; i >= 0; i-- {
		l = Cons(s[i], l)
	}

	return l
}

// Collect consumes seq and returns a list of its elements in order.
// The first element becomes the head and the list built from the remaining
// elements becomes the tail. An empty seq yields Nil.
func Collect[E any](seq iter.Seq[E]) List[E] {
	next, stop := iter.Pull(seq)
	defer stop()

	return collect(next)
}

func collect[E any](next func() (E, bool)) List[E] {
	val, ok := next()
	if !ok {
		return List[E]{}
	}

	return Cons(val, collect(next))
}

// IsNil reports whether the list is empty.
func (l List[E]) IsNil() bool {
	return l.cell == nil
}

// Uncons splits a non-empty list into its head and tail.
// It returns false if the list is Nil.
func (l List[E]) Uncons() (E, List[E], bool) {
	if l.cell == nil {
		var zero E
		return zero, List[E]{}, false
	}

	return l.cell.val, l.cell.rest, true
}

// All returns a sequence over the list elements in order.
func (l List[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		it := l.Iter()
		for val, ok := it.Next(); ok; val, ok = it.Next() {
			if !yield(val) {
				return
			}
		}
	}
}

// Slice returns the list elements as a new slice. Nil yields an empty, non-nil slice.
func (l List[E]) Slice() []E {
	s := []E{}
	for c := l.cell; c != nil; c = c.rest.cell {
		s = append(s, c.val)
	}

	return s
}

// String formats the list the way fmt formats a slice: [1 2 3].
func (l List[E]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')
	for c := l.cell; c != nil; c = c.rest.cell {
		if c != l.cell {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, c.val)
	}
	sb.WriteByte(']')

	return sb.String()
}

// GoString formats the list structurally: Cons(1, Cons(2, Nil)).
func (l List[E]) GoString() string {
	var sb strings.Builder

	depth := 0
	for c := l.cell; c != nil; c = c.rest.cell {
		fmt.Fprintf(&sb, "Cons(%#v, ", c.val)
		depth++
	}
	sb.WriteString("Nil")
	sb.WriteString(strings.Repeat(")", depth))

	return sb.String()
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[E comparable](a, b List[E]) bool {
	return EqualFunc(a, b, func(x, y E) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[E any](a, b List[E], eq func(E, E) bool) bool {
	x, y := a.cell, b.cell
	for x != nil && y != nil {
		if x == y {
			return true // shared tail
		}
		if !eq(x.val, y.val) {
			return false
		}

		x, y = x.rest.cell, y.rest.cell
	}

	return x == nil && y == nil
}
