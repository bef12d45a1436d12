package routing

import (
	"fmt"
	"sort"

	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

// BuildLocationIndex собирает точки, которые пользователь может выбрать
// как начало или конец маршрута: станции, верх/низ трасс и подъёмников.
//
// Верх трассы берётся из source первого именованного ребра-спуска, низ
// из target; у подъёмника наоборот, source это нижняя станция. Рёбра без
// имени точек не дают. Дубликаты узлов внутри каждого списка отбрасываются.
func BuildLocationIndex(g *domain.Graph) *LocationIndex {
	index := &LocationIndex{
		Stations:     []LocationEntry{},
		SlopeTops:    []LocationEntry{},
		SlopeBottoms: []LocationEntry{},
		LiftBottoms:  []LocationEntry{},
		LiftTops:     []LocationEntry{},
	}

	for _, node := range g.Nodes() {
		if !node.IsStation() {
			continue
		}
		index.Stations = append(index.Stations, LocationEntry{
			NodeID: node.ID,
			Label:  fmt.Sprintf("%s (%.0fm)", node.Station, node.Elevation),
		})
	}
	sort.Slice(index.Stations, func(i, j int) bool {
		return index.Stations[i].Label < index.Stations[j].Label
	})

	slopeTops := newEntrySet()
	slopeBottoms := newEntrySet()
	liftBottoms := newEntrySet()
	liftTops := newEntrySet()

	for _, edge := range g.Edges() {
		if edge.Name == "" {
			continue
		}
		switch edge.Kind {
		case domain.KindSlope:
			slopeTops.add(edge.Source, edge.Name)
			slopeBottoms.add(edge.Target, edge.Name)
		case domain.KindLift:
			liftBottoms.add(edge.Source, edge.Name)
			liftTops.add(edge.Target, edge.Name)
		}
	}

	index.SlopeTops = slopeTops.sorted()
	index.SlopeBottoms = slopeBottoms.sorted()
	index.LiftBottoms = liftBottoms.sorted()
	index.LiftTops = liftTops.sorted()

	return index
}

// entrySet накапливает записи, запоминая первое именованное ребро узла
type entrySet struct {
	seen    map[string]bool
	entries []LocationEntry
}

func newEntrySet() *entrySet {
	return &entrySet{seen: make(map[string]bool)}
}

func (s *entrySet) add(nodeID, name string) {
	if s.seen[nodeID] {
		return
	}
	s.seen[nodeID] = true
	s.entries = append(s.entries, LocationEntry{NodeID: nodeID, Label: name})
}

func (s *entrySet) sorted() []LocationEntry {
	result := make([]LocationEntry, len(s.entries))
	copy(result, s.entries)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Label < result[j].Label
	})
	return result
}
