package list

// Iter is a forward-only cursor over a list.
//
// Each call to Next takes the head of the remaining list and keeps its tail.
// Once Next reports false the iterator stays exhausted.
type Iter[E any] struct {
	rest List[E]
}

// Iter returns a cursor positioned at the head of the list.
func (l List[E]) Iter() *Iter[E] {
	return &Iter[E]{rest: l}
}

// Next returns the next element. It returns false when the list is exhausted.
func (it *Iter[E]) Next() (E, bool) {
	val, rest, ok := it.rest.Uncons()
	if !ok {
		return val, false
	}

	it.rest = rest

	return val, true
}

// Rest returns the part of the list not yet consumed.
func (it *Iter[E]) Rest() List[E] {
	return it.rest
}
