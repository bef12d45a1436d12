package routing

import "github.com/ThomasMeMan2/skinavigator/pkg/domain"

// buildProfile строит профиль высот маршрута: упорядоченную по дистанции
// последовательность точек от стартового узла до конечного.
//
// Для шага с геометрией длиннее двух точек между узлами вставляются
// len-2 интерполированные точки на равных долях дистанции шага; высота
// интерполируется линейно между высотами узлов. Узловые точки несут
// фактическую высоту узла, без интерполяции.
func buildProfile(g *domain.Graph, start string, steps []Step) []ProfilePoint {
	profile := make([]ProfilePoint, 0, len(steps)+1)

	elevation := func(nodeID string) float64 {
		node, err := g.Node(nodeID)
		if err != nil {
			return 0
		}
		return node.Elevation
	}

	profile = append(profile, ProfilePoint{
		Distance:  0,
		Elevation: elevation(start),
		Node:      true,
	})

	cumulative := 0.0
	for _, step := range steps {
		sourceEle := elevation(step.Source)
		targetEle := elevation(step.Target)

		if n := len(step.Geometry); n > 2 {
			for i := 1; i <= n-2; i++ {
				fraction := float64(i) / float64(n-1)
				profile = append(profile, ProfilePoint{
					Distance:   cumulative + step.Distance*fraction,
					Elevation:  sourceEle + (targetEle-sourceEle)*fraction,
					Node:       false,
					Kind:       step.Kind,
					Difficulty: step.Difficulty,
				})
			}
		}

		cumulative += step.Distance
		profile = append(profile, ProfilePoint{
			Distance:  cumulative,
			Elevation: targetEle,
			Node:      true,
		})
	}

	return profile
}
