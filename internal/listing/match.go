// Package listing holds the pure filter and sort functions behind every list
// page. Nothing here performs I/O; inputs are never modified.
package listing

import (
	"cmp"
	"strings"

	"streetbite/internal/domain/entity"
)

// AllOption is the "no constraint" value of every select-style criterion.
const AllOption = "All"

func normalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// containsAny reports whether any field contains the already-normalized query.
// An empty query matches everything.
func containsAny(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}

	return false
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)

	return v == "" || strings.EqualFold(v, AllOption)
}

// compareIDs orders numeric ids numerically and other ids as text. Numeric ids
// sort before non-numeric ones.
func compareIDs(a, b entity.ID) int {
	ai, aNum := a.Numeric()
	bi, bNum := b.Numeric()
	switch {
	case aNum && bNum:
		if c := cmp.Compare(ai, bi); c != 0 {
			return c
		}
	case aNum:
		return -1
	case bNum:
		return 1
	}

	return cmp.Compare(a, b)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}

	return out
}
