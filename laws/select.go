package laws

import (
	"slices"
	"strings"
)

// Filter returns true if a law is selected.
type Filter func(name string) bool

func AllowAllFilter(string) bool {
	return true
}

// MakeFilter builds a filter from include and exclude patterns.
// A pattern is either an exact law name or a prefix followed by "*".
// An empty include list selects every law.
func MakeFilter(include, exclude []string) Filter {
	if len(include) == 0 && len(exclude) == 0 {
		return AllowAllFilter
	}

	includeFilter := makePatterns(include)
	excludeFilter := makePatterns(exclude)

	return func(name string) bool {
		if len(include) != 0 && !includeFilter.Has(name) {
			return false
		}

		if len(exclude) != 0 && excludeFilter.Has(name) {
			return false
		}

		return true
	}
}

type patterns struct {
	names    []string
	prefixes []string
}

func (p patterns) Has(name string) bool {
	if slices.Contains(p.names, name) {
		return true
	}

	return slices.ContainsFunc(p.prefixes, func(prefix string) bool {
		return strings.HasPrefix(name, prefix)
	})
}

func makePatterns(filter []string) patterns {
	var p patterns

	for _, f := range filter {
		if prefix, ok := strings.CutSuffix(f, "*"); ok {
			p.prefixes = append(p.prefixes, prefix)
			continue
		}

		p.names = append(p.names, f)
	}

	return p
}

// Select returns the laws accepted by filter, in order.
func Select(laws []Law, filter Filter) []Law {
	var rv []Law
	for _, law := range laws {
		if filter(law.Name) {
			rv = append(rv, law)
		}
	}

	return rv
}
