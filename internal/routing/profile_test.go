package routing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

func TestProfile_NodesOnly(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("A", 1500), node("B", 2100), node("C", 1900)},
		[]*domain.Edge{
			lift("l1", "A", "B", domain.LiftGondola, 1000, 600, ""),
			slope("s1", "B", "C", domain.DifficultyGreen, 600, -200, ""),
		},
	)

	route, err := FindRoute(g, "A", "C", nil)
	require.NoError(t, err)

	profile := route.Profile
	require.Len(t, profile, 3)

	assert.True(t, profile[0].Node)
	assert.InDelta(t, 0.0, profile[0].Distance, 1e-9)
	assert.InDelta(t, 1500.0, profile[0].Elevation, 1e-9)

	assert.True(t, profile[1].Node)
	assert.InDelta(t, 1000.0, profile[1].Distance, 1e-9)
	assert.InDelta(t, 2100.0, profile[1].Elevation, 1e-9)

	assert.True(t, profile[2].Node)
	assert.InDelta(t, 1600.0, profile[2].Distance, 1e-9)
	assert.InDelta(t, 1900.0, profile[2].Elevation, 1e-9)
}

func TestProfile_InterpolatesGeometry(t *testing.T) {
	edge := slope("s1", "A", "B", domain.DifficultyRed, 900, -300, "")
	// пять точек геометрии дают три интерполированные точки профиля
	edge.Geometry = [][2]float64{{45.0, 6.0}, {45.1, 6.1}, {45.2, 6.2}, {45.3, 6.3}, {45.4, 6.4}}

	g := mustBuild(t,
		[]*domain.Node{node("A", 2000), node("B", 1700)},
		[]*domain.Edge{edge},
	)

	route, err := FindRoute(g, "A", "B", nil)
	require.NoError(t, err)

	profile := route.Profile
	require.Len(t, profile, 5) // старт + 3 интерполяции + финиш

	for i, point := range profile[1:4] {
		fraction := float64(i+1) / 4.0
		assert.False(t, point.Node)
		assert.Equal(t, domain.KindSlope, point.Kind)
		assert.Equal(t, domain.DifficultyRed, point.Difficulty)
		assert.InDelta(t, 900*fraction, point.Distance, 1e-9)
		assert.InDelta(t, 2000-300*fraction, point.Elevation, 1e-9)
	}

	last := profile[len(profile)-1]
	assert.True(t, last.Node)
	assert.InDelta(t, 1700.0, last.Elevation, 1e-9)
}

func TestProfile_TwoPointGeometryNotInterpolated(t *testing.T) {
	edge := slope("s1", "A", "B", domain.DifficultyBlue, 500, -100, "")
	edge.Geometry = [][2]float64{{45.0, 6.0}, {45.1, 6.1}}

	g := mustBuild(t,
		[]*domain.Node{node("A", 1100), node("B", 1000)},
		[]*domain.Edge{edge},
	)

	route, err := FindRoute(g, "A", "B", nil)
	require.NoError(t, err)
	assert.Len(t, route.Profile, 2)
}

func TestProfile_DistanceMonotoneAndEndsAtTotal(t *testing.T) {
	liftEdge := lift("l1", "A", "B", domain.LiftChair, 1234.5, 400, "")
	liftEdge.Geometry = [][2]float64{{45.0, 6.0}, {45.1, 6.1}, {45.2, 6.2}, {45.3, 6.3}}
	slopeEdge := slope("s1", "B", "C", domain.DifficultyBlack, 876.5, -450, "")
	slopeEdge.Geometry = [][2]float64{{45.3, 6.3}, {45.2, 6.25}, {45.1, 6.2}}

	g := mustBuild(t,
		[]*domain.Node{node("A", 1500), node("B", 1900), node("C", 1450)},
		[]*domain.Edge{liftEdge, slopeEdge},
	)

	route, err := FindRoute(g, "A", "C", nil)
	require.NoError(t, err)

	profile := route.Profile
	assert.GreaterOrEqual(t, len(profile), len(route.Steps)+1)

	for i := 1; i < len(profile); i++ {
		assert.GreaterOrEqual(t, profile[i].Distance, profile[i-1].Distance)
	}

	final := profile[len(profile)-1].Distance
	assert.LessOrEqual(t, math.Abs(final-float64(route.Summary.Distance)), 0.5)
}
