package routing

import (
	"math"

	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

// FindRoute решает маршрут от start к end с учётом исключений и собирает
// полный результат: путь, шаги, сводку и профиль высот.
//
// Возможные исходы: маршрут, SAME_LOCATION, NO_ROUTE, NOT_FOUND. Все
// исходы возвращаются как типизированные ошибки, паник нет.
func FindRoute(g *domain.Graph, start, end string, exclusions domain.Exclusions) (*Route, error) {
	result, err := shortestPath(g, start, end, exclusions)
	if err != nil {
		return nil, err
	}
	return assemble(g, result, start, end, exclusions), nil
}

// assemble восстанавливает путь обратным проходом по предшественникам
// и строит шаги, сводку и профиль
func assemble(g *domain.Graph, result *searchResult, start, end string, exclusions domain.Exclusions) *Route {
	// обратный проход от end к start
	var reversed []*domain.Edge
	for node := end; node != start; node = result.prevNode[node] {
		reversed = append(reversed, result.prevEdge[node])
	}

	edges := make([]*domain.Edge, 0, len(reversed))
	for i := len(reversed) - 1; i >= 0; i-- {
		edges = append(edges, reversed[i])
	}

	path := make([]string, 0, len(edges)+1)
	path = append(path, start)
	steps := make([]Step, 0, len(edges))

	var totalDistance, totalDuration, ascent, descent float64
	for _, edge := range edges {
		duration := round1(domain.Cost(edge, exclusions))
		steps = append(steps, Step{
			EdgeID:         edge.ID,
			Name:           edge.DisplayName(),
			Kind:           edge.Kind,
			Difficulty:     edge.Difficulty,
			LiftType:       edge.LiftType,
			Distance:       edge.Distance,
			ElevationDelta: edge.ElevationDelta,
			Duration:       duration,
			Source:         edge.Source,
			Target:         edge.Target,
			Geometry:       edge.Geometry,
		})
		path = append(path, edge.Target)

		totalDistance += edge.Distance
		totalDuration += duration
		switch {
		case edge.ElevationDelta > 0:
			ascent += edge.ElevationDelta
		case edge.ElevationDelta < 0:
			descent += -edge.ElevationDelta
		}
	}

	return &Route{
		Path:  path,
		Steps: steps,
		Summary: Summary{
			Distance:  int(math.Round(totalDistance)),
			Duration:  int(math.Round(totalDuration)),
			Ascent:    int(math.Round(ascent)),
			Descent:   int(math.Round(descent)),
			StepCount: len(steps),
		},
		Profile: buildProfile(g, start, steps),
	}
}

// round1 округляет до одного знака после запятой
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
