package geo

import (
	"math"
	"slices"

	"github.com/paulmach/orb"
)

// Locatable is anything with an optional position.
type Locatable interface {
	Location() (orb.Point, bool)
}

// Ranked pairs an item with its distance from the reference point.
// DistanceKm is +Inf when either side has no usable coordinates.
type Ranked[T any] struct {
	Item       T
	DistanceKm float64
}

// HasDistance reports whether the distance is finite.
func (r Ranked[T]) HasDistance() bool {
	return !math.IsInf(r.DistanceKm, 1)
}

// Annotate computes the distance of every item from ref without reordering.
func Annotate[T Locatable](items []T, ref orb.Point) []Ranked[T] {
	refOK := Valid(ref)
	out := make([]Ranked[T], len(items))
	for i, item := range items {
		out[i] = Ranked[T]{Item: item, DistanceKm: math.Inf(1)}
		if !refOK {
			continue
		}
		if loc, ok := item.Location(); ok && Valid(loc) {
			out[i].DistanceKm = Distance(ref, loc)
		}
	}

	return out
}

// RankByDistance returns a new slice ordered nearest first. Items without
// coordinates go last; equal distances keep their input order.
func RankByDistance[T Locatable](items []T, ref orb.Point) []Ranked[T] {
	ranked := Annotate(items, ref)
	slices.SortStableFunc(ranked, func(a, b Ranked[T]) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	return ranked
}
