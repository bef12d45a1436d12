package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasMeMan2/skinavigator/pkg/apperror"
	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

func node(id string, ele float64) *domain.Node {
	return &domain.Node{ID: id, Elevation: ele}
}

func station(id string, ele float64, name string) *domain.Node {
	return &domain.Node{ID: id, Elevation: ele, Station: name}
}

func slope(id, from, to string, difficulty domain.Difficulty, distance, delta float64, name string) *domain.Edge {
	return &domain.Edge{
		ID: id, Source: from, Target: to, Kind: domain.KindSlope,
		Difficulty: difficulty, Distance: distance, ElevationDelta: delta, Name: name,
	}
}

func lift(id, from, to string, liftType domain.LiftType, distance, delta float64, name string) *domain.Edge {
	return &domain.Edge{
		ID: id, Source: from, Target: to, Kind: domain.KindLift,
		LiftType: liftType, Distance: distance, ElevationDelta: delta, Name: name,
	}
}

func mustBuild(t *testing.T, nodes []*domain.Node, edges []*domain.Edge) *domain.Graph {
	t.Helper()
	g, err := domain.Build(nodes, edges)
	require.NoError(t, err)
	return g
}

func TestFindRoute_SameLocation(t *testing.T) {
	g := mustBuild(t, []*domain.Node{node("a", 1000)}, nil)

	route, err := FindRoute(g, "a", "a", nil)
	require.Error(t, err)
	assert.Nil(t, route)
	assert.True(t, apperror.Is(err, apperror.CodeSameLocation))
}

func TestFindRoute_UnknownNodes(t *testing.T) {
	g := mustBuild(t, []*domain.Node{node("a", 1000), node("b", 900)}, nil)

	_, err := FindRoute(g, "ghost", "b", nil)
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))

	_, err = FindRoute(g, "a", "ghost", nil)
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}

func TestFindRoute_SingleBlueSlope(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{station("A", 1000, "Top"), station("B", 500, "Bottom")},
		[]*domain.Edge{slope("s1", "A", "B", domain.DifficultyBlue, 1000, -500, "Piste Bleue")},
	)

	route, err := FindRoute(g, "A", "B", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, route.Path)
	require.Len(t, route.Steps, 1)
	assert.InDelta(t, 4.0, route.Steps[0].Duration, 1e-9)
	assert.Equal(t, 1000, route.Summary.Distance)
	assert.Equal(t, 4, route.Summary.Duration)
	assert.Equal(t, 0, route.Summary.Ascent)
	assert.Equal(t, 500, route.Summary.Descent)
	assert.Equal(t, 1, route.Summary.StepCount)
}

func TestFindRoute_ExclusionMakesNoRoute(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("A", 1000), node("B", 500)},
		[]*domain.Edge{slope("s1", "A", "B", domain.DifficultyBlue, 1000, -500, "")},
	)

	route, err := FindRoute(g, "A", "B", domain.NewExclusions(domain.DifficultyBlue))
	require.Error(t, err)
	assert.Nil(t, route)
	assert.True(t, apperror.Is(err, apperror.CodeNoRoute))
}

func TestFindRoute_LiftThenSlope(t *testing.T) {
	// подъём гондолой, затем зелёный спуск: (1000/200+3) + (600/200) = 11
	g := mustBuild(t,
		[]*domain.Node{node("A", 1500), node("B", 2100), node("C", 1900)},
		[]*domain.Edge{
			lift("l1", "A", "B", domain.LiftGondola, 1000, 600, "Telecabine"),
			slope("s1", "B", "C", domain.DifficultyGreen, 600, -200, "Verte"),
		},
	)

	route, err := FindRoute(g, "A", "C", nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, route.Path)
	assert.Equal(t, 11, route.Summary.Duration)
	assert.Equal(t, 1600, route.Summary.Distance)
	assert.Equal(t, 600, route.Summary.Ascent)
	assert.Equal(t, 200, route.Summary.Descent)
}

func TestFindRoute_PicksCheaperPath(t *testing.T) {
	// прямой чёрный спуск дольше, чем объезд по красному
	g := mustBuild(t,
		[]*domain.Node{node("A", 2000), node("B", 1700), node("C", 1400)},
		[]*domain.Edge{
			slope("black", "A", "C", domain.DifficultyBlack, 1200, -600, ""), // 6.0
			slope("red1", "A", "B", domain.DifficultyRed, 600, -300, ""),     // 2.0
			slope("red2", "B", "C", domain.DifficultyRed, 600, -300, ""),     // 2.0
		},
	)

	route, err := FindRoute(g, "A", "C", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, route.Path)

	// с закрытыми красными остаётся только чёрный
	route, err = FindRoute(g, "A", "C", domain.NewExclusions(domain.DifficultyRed))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, route.Path)
	assert.Equal(t, "black", route.Steps[0].EdgeID)
}

func TestFindRoute_TieBrokenByInputOrder(t *testing.T) {
	// два ребра одинаковой стоимости, выигрывает первое во входных данных
	g := mustBuild(t,
		[]*domain.Node{node("A", 1000), node("B", 800)},
		[]*domain.Edge{
			slope("first", "A", "B", domain.DifficultyBlue, 500, -200, ""),
			slope("second", "A", "B", domain.DifficultyBlue, 500, -200, ""),
		},
	)

	for i := 0; i < 5; i++ {
		route, err := FindRoute(g, "A", "B", nil)
		require.NoError(t, err)
		assert.Equal(t, "first", route.Steps[0].EdgeID)
	}
}

func TestFindRoute_ExclusionsNeverImproveTime(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("A", 2000), node("B", 1700), node("C", 1400), node("D", 1000)},
		[]*domain.Edge{
			slope("s1", "A", "B", domain.DifficultyRed, 900, -300, ""),
			slope("s2", "B", "C", domain.DifficultyBlue, 500, -300, ""),
			slope("s3", "A", "C", domain.DifficultyBlack, 1400, -600, ""),
			slope("s4", "C", "D", domain.DifficultyGreen, 800, -400, ""),
			lift("l1", "A", "D", domain.LiftChair, 2000, -1000, ""),
		},
	)

	base, err := FindRoute(g, "A", "D", nil)
	require.NoError(t, err)

	exclusionSets := []domain.Exclusions{
		domain.NewExclusions(domain.DifficultyRed),
		domain.NewExclusions(domain.DifficultyBlack),
		domain.NewExclusions(domain.DifficultyRed, domain.DifficultyBlack),
		domain.NewExclusions(domain.DifficultyGreen, domain.DifficultyBlue),
	}

	for _, excl := range exclusionSets {
		route, err := FindRoute(g, "A", "D", excl)
		if err != nil {
			assert.True(t, apperror.Is(err, apperror.CodeNoRoute))
			continue
		}
		assert.GreaterOrEqual(t, route.Summary.Duration, base.Summary.Duration)
	}
}

func TestFindRoute_PathIsConnectedAndFinite(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("A", 2000), node("B", 1700), node("C", 1400)},
		[]*domain.Edge{
			lift("l1", "A", "B", domain.LiftGondola, 1000, 300, ""),
			slope("s1", "B", "C", domain.DifficultyRed, 800, -300, ""),
		},
	)

	excl := domain.NewExclusions(domain.DifficultyBlack)
	route, err := FindRoute(g, "A", "C", excl)
	require.NoError(t, err)

	assert.Equal(t, "A", route.Path[0])
	assert.Equal(t, "C", route.Path[len(route.Path)-1])
	for i, step := range route.Steps {
		assert.Equal(t, route.Path[i], step.Source)
		assert.Equal(t, route.Path[i+1], step.Target)
		edge, err := g.Edge(step.EdgeID)
		require.NoError(t, err)
		assert.False(t, domain.IsInfinite(domain.Cost(edge, excl)))
	}
}
