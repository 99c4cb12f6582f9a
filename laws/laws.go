// Package laws checks algebraic properties of the list operations.
package laws

import (
	"slices"

	"github.com/percona-lab/l99/errors"
	"github.com/percona-lab/l99/l99"
	"github.com/percona-lab/l99/list"
)

// ErrViolated is wrapped by every law failure.
var ErrViolated = errors.New("law violated")

// Law is a named property of list operations over int lists.
type Law struct {
	Name  string
	Check func(l list.List[int]) error
}

// All returns every law.
func All() []Law {
	return []Law{
		{"round-trip", RoundTrip[int]},
		{"reverse-involution", ReverseInvolution[int]},
		{"reverse-length", ReverseLength[int]},
		{"last-is-kth", LastIsKth[int]},
		{"last-but-one-is-kth", LastButOneIsKth[int]},
		{"kth-out-of-range", KthOutOfRange[int]},
	}
}

func violated[E any](l list.List[E], format string, args ...any) error {
	return errors.Wrapf(ErrViolated, "%v: "+format, append([]any{l}, args...)...)
}

// RoundTrip: converting l to a sequence and back yields l, and so does
// converting its elements to a list and back.
func RoundTrip[E comparable](l list.List[E]) error {
	if got := list.Collect(l.All()); !list.Equal(l, got) {
		return violated(l, "collect(all) = %v", got)
	}

	vals := l.Slice()
	if got := slices.Collect(list.Collect(slices.Values(vals)).All()); !slices.Equal(vals, got) {
		return violated(l, "values round trip = %v", got)
	}

	return nil
}

// ReverseInvolution: reverse(reverse(l)) == l.
func ReverseInvolution[E comparable](l list.List[E]) error {
	if got := l99.Reverse(l99.Reverse(l)); !list.Equal(l, got) {
		return violated(l, "reverse(reverse) = %v", got)
	}

	return nil
}

// ReverseLength: length(reverse(l)) == length(l).
func ReverseLength[E any](l list.List[E]) error {
	n, m := l99.Length(l), l99.Length(l99.Reverse(l))
	if n != m {
		return violated(l, "length %d, reversed length %d", n, m)
	}

	return nil
}

// LastIsKth: last(l) == kth(l, length(l)-1), and both are none for an empty l.
func LastIsKth[E comparable](l list.List[E]) error {
	last := l99.Last(l)

	n := l99.Length(l)
	if n == 0 {
		if last.Ok {
			return violated(l, "last = %v", last.Value)
		}

		return nil
	}

	if kth := l99.Kth(l, n-1); last != kth {
		return violated(l, "last = %v, kth(%d) = %v", last, n-1, kth)
	}

	return nil
}

// LastButOneIsKth: last_but_one(l) is none for lengths 0 and 1,
// otherwise it equals kth(l, length(l)-2).
func LastButOneIsKth[E comparable](l list.List[E]) error {
	lbo := l99.LastButOne(l)

	n := l99.Length(l)
	if n < 2 { //nolint:mnd
		if lbo.Ok {
			return violated(l, "last but one = %v", lbo.Value)
		}

		return nil
	}

	if kth := l99.Kth(l, n-2); lbo != kth {
		return violated(l, "last but one = %v, kth(%d) = %v", lbo, n-2, kth)
	}

	return nil
}

// KthOutOfRange: kth(l, pos) is none for pos >= length(l).
func KthOutOfRange[E any](l list.List[E]) error {
	n := l99.Length(l)
	for _, pos := range []uint{n, n + 1, n * 2, n + 100} {
		if kth := l99.Kth(l, pos); kth.Ok {
			return violated(l, "kth(%d) = %v", pos, kth.Value)
		}
	}

	return nil
}
