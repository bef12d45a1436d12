package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

func TestLocationIndex_Stations(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{
			station("n1", 1970, "Plagne Centre"),
			station("n2", 2350.4, "Bergerie"),
			node("n3", 1800),
		},
		nil,
	)

	index := BuildLocationIndex(g)
	require.Len(t, index.Stations, 2)
	// сортировка по имени станции
	assert.Equal(t, "Bergerie (2350m)", index.Stations[0].Label)
	assert.Equal(t, "Plagne Centre (1970m)", index.Stations[1].Label)
}

func TestLocationIndex_SlopesAndLifts(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("top", 2200), node("mid", 1900), node("base", 1600)},
		[]*domain.Edge{
			slope("s1", "top", "mid", domain.DifficultyRed, 800, -300, "Mira"),
			slope("s2", "mid", "base", domain.DifficultyBlue, 700, -300, "Arpette"),
			lift("l1", "base", "top", domain.LiftGondola, 1600, 600, "Telecabine"),
		},
	)

	index := BuildLocationIndex(g)

	require.Len(t, index.SlopeTops, 2)
	assert.Equal(t, "mid", index.SlopeTops[0].NodeID) // Arpette < Mira
	assert.Equal(t, "top", index.SlopeTops[1].NodeID)

	require.Len(t, index.SlopeBottoms, 2)
	require.Len(t, index.LiftBottoms, 1)
	assert.Equal(t, "base", index.LiftBottoms[0].NodeID)
	require.Len(t, index.LiftTops, 1)
	assert.Equal(t, "top", index.LiftTops[0].NodeID)
}

func TestLocationIndex_UnnamedEdgesSkipped(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("a", 2000), node("b", 1500)},
		[]*domain.Edge{
			slope("s1", "a", "b", domain.DifficultyBlue, 500, -500, ""),
			lift("l1", "b", "a", domain.LiftChair, 500, 500, ""),
		},
	)

	index := BuildLocationIndex(g)
	assert.Empty(t, index.SlopeTops)
	assert.Empty(t, index.SlopeBottoms)
	assert.Empty(t, index.LiftBottoms)
	assert.Empty(t, index.LiftTops)
}

func TestLocationIndex_DeduplicatesByNode(t *testing.T) {
	// два именованных спуска из одного узла: узел попадает в SlopeTops
	// один раз, с именем первого ребра во входном порядке
	g := mustBuild(t,
		[]*domain.Node{node("top", 2200), node("a", 1900), node("b", 1800)},
		[]*domain.Edge{
			slope("s1", "top", "a", domain.DifficultyRed, 700, -300, "Zorro"),
			slope("s2", "top", "b", domain.DifficultyBlue, 900, -400, "Alpha"),
		},
	)

	index := BuildLocationIndex(g)
	require.Len(t, index.SlopeTops, 1)
	assert.Equal(t, "top", index.SlopeTops[0].NodeID)
	assert.Equal(t, "Zorro", index.SlopeTops[0].Label)

	seen := make(map[string]int)
	for _, entry := range index.SlopeBottoms {
		seen[entry.NodeID]++
	}
	for _, count := range seen {
		assert.Equal(t, 1, count)
	}
}

func TestLocationIndex_NodeInMultipleLists(t *testing.T) {
	g := mustBuild(t,
		[]*domain.Node{node("summit", 2500), node("base", 1600)},
		[]*domain.Edge{
			slope("s1", "summit", "base", domain.DifficultyBlack, 1500, -900, "Couloir"),
			lift("l1", "base", "summit", domain.LiftCableCar, 1500, 900, "Telepherique"),
		},
	)

	index := BuildLocationIndex(g)
	require.Len(t, index.SlopeTops, 1)
	require.Len(t, index.LiftTops, 1)
	assert.Equal(t, "summit", index.SlopeTops[0].NodeID)
	assert.Equal(t, "summit", index.LiftTops[0].NodeID)
}
