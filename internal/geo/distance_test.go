package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type place struct {
	name string
	loc  *orb.Point
}

func (p place) Location() (orb.Point, bool) {
	if p.loc == nil {
		return orb.Point{}, false
	}

	return *p.loc, true
}

func at(lat, lng float64) *orb.Point {
	return &orb.Point{lng, lat}
}

func TestDistance_SamePointIsZero(t *testing.T) {
	t.Parallel()

	points := []orb.Point{{0, 0}, {72.8777, 19.0760}, {-122.4194, 37.7749}, {179.9, -89.9}}
	for _, p := range points {
		assert.Equal(t, 0.0, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][2]orb.Point{
		{{72.8777, 19.0760}, {73.8567, 18.5204}},
		{{-0.1276, 51.5072}, {2.3522, 48.8566}},
		{{0, 0}, {180, 0}},
	}
	for _, pair := range pairs {
		assert.InDelta(t, Distance(pair[0], pair[1]), Distance(pair[1], pair[0]), 1e-9)
	}
}

func TestDistance_KnownValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b orb.Point
		want float64
	}{
		{name: "mumbai to pune", a: orb.Point{72.8777, 19.0760}, b: orb.Point{73.8567, 18.5204}, want: 120.15},
		{name: "london to paris", a: orb.Point{-0.1276, 51.5072}, b: orb.Point{2.3522, 48.8566}, want: 343.53},
		{name: "quarter meridian", a: orb.Point{0, 0}, b: orb.Point{0, 90}, want: math.Pi * EarthRadiusKm / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, Distance(tt.a, tt.b), 0.5)
		})
	}
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Valid(orb.Point{121.5, 25.0}))
	assert.False(t, Valid(orb.Point{200, 25.0}))
	assert.False(t, Valid(orb.Point{10, -91}))
	assert.False(t, Valid(orb.Point{math.NaN(), 0}))
	assert.False(t, Valid(orb.Point{0, math.Inf(1)}))
}

func TestRankByDistance_MissingCoordinatesGoLast(t *testing.T) {
	t.Parallel()

	ref := orb.Point{72.8777, 19.0760}
	near := place{name: "near", loc: at(19.08, 72.88)}
	far := place{name: "far", loc: at(18.52, 73.85)}
	unknown := place{name: "unknown"}

	inputs := [][]place{
		{unknown, near, far},
		{near, unknown, far},
		{far, near, unknown},
	}

	for _, in := range inputs {
		ranked := RankByDistance(in, ref)
		require.Len(t, ranked, 3)
		assert.Equal(t, "near", ranked[0].Item.name)
		assert.Equal(t, "far", ranked[1].Item.name)
		assert.Equal(t, "unknown", ranked[2].Item.name)
		assert.False(t, ranked[2].HasDistance())
		assert.True(t, math.IsInf(ranked[2].DistanceKm, 1))
	}
}

func TestRankByDistance_StableAndDeterministic(t *testing.T) {
	t.Parallel()

	ref := orb.Point{0, 0}
	in := []place{
		{name: "a", loc: at(1, 1)},
		{name: "b"},
		{name: "c", loc: at(1, 1)},
		{name: "d"},
		{name: "e", loc: at(0.5, 0.5)},
	}

	first := RankByDistance(in, ref)
	second := RankByDistance(in, ref)
	assert.Equal(t, first, second)

	names := make([]string, 0, len(first))
	for _, r := range first {
		names = append(names, r.Item.name)
	}
	assert.Equal(t, []string{"e", "a", "c", "b", "d"}, names)

	// input slice is untouched
	assert.Equal(t, "a", in[0].name)
}

func TestRankByDistance_InvalidReferenceKeepsOrder(t *testing.T) {
	t.Parallel()

	in := []place{{name: "x", loc: at(1, 1)}, {name: "y", loc: at(0, 0)}}
	ranked := RankByDistance(in, orb.Point{math.NaN(), math.NaN()})

	assert.Equal(t, "x", ranked[0].Item.name)
	assert.Equal(t, "y", ranked[1].Item.name)
	assert.False(t, ranked[0].HasDistance())
}
