package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

func TestAssemble_UnnamedStepGetsDefaultName(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("a", 1200), node("b", 1000)},
		[]*domain.Edge{slope("s1", "a", "b", domain.DifficultyGreen, 400, -200, "")},
	)

	route, err := FindRoute(g, "a", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, "Unnamed", route.Steps[0].Name)
}

func TestAssemble_DurationRoundedToOneDecimal(t *testing.T) {
	// 333 / 250 = 1.332 -> 1.3
	g := mustBuild(t,
		[]*domain.Node{node("a", 1200), node("b", 1100)},
		[]*domain.Edge{slope("s1", "a", "b", domain.DifficultyBlue, 333, -100, "")},
	)

	route, err := FindRoute(g, "a", "b", nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.3, route.Steps[0].Duration, 1e-9)
}

func TestAssemble_SummaryDistanceEqualsStepSum(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("a", 2000), node("b", 1800), node("c", 1500)},
		[]*domain.Edge{
			slope("s1", "a", "b", domain.DifficultyRed, 412.7, -200, ""),
			slope("s2", "b", "c", domain.DifficultyBlue, 633.9, -300, ""),
		},
	)

	route, err := FindRoute(g, "a", "c", nil)
	require.NoError(t, err)

	var sum float64
	for _, step := range route.Steps {
		sum += step.Distance
	}
	assert.InDelta(t, float64(route.Summary.Distance), sum, 0.5)
}

func TestAssemble_AscentDescentSplit(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("a", 1500), node("b", 2100), node("c", 2100), node("d", 1700)},
		[]*domain.Edge{
			lift("l1", "a", "b", domain.LiftChair, 1200, 600, ""),
			slope("s1", "b", "c", domain.DifficultyGreen, 300, 0, ""), // плоский траверс
			slope("s2", "c", "d", domain.DifficultyRed, 900, -400, ""),
		},
	)

	route, err := FindRoute(g, "a", "d", nil)
	require.NoError(t, err)
	assert.Equal(t, 600, route.Summary.Ascent)
	assert.Equal(t, 400, route.Summary.Descent)
	assert.Equal(t, 3, route.Summary.StepCount)
}
