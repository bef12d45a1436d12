package domain

import (
	"fmt"
	"sort"

	"github.com/ThomasMeMan2/skinavigator/pkg/apperror"
)

// Graph представляет направленный граф горнолыжного курорта.
// После Build граф неизменяем, поэтому читать его можно из любых горутин.
type Graph struct {
	nodes map[string]*Node
	edges map[string]*Edge

	// outgoing сохраняет рёбра в порядке их появления во входных данных,
	// от этого зависит детерминизм выбора маршрута при равной стоимости
	outgoing map[string][]*Edge

	edgeOrder []string // ID рёбер в исходном порядке
}

// Build строит граф из узлов и рёбер, проверяя их согласованность.
// Возвращает MALFORMED_DATA при ссылке на несуществующий узел,
// отрицательной дистанции, неизвестном типе ребра или петле.
func Build(nodes []*Node, edges []*Edge) (*Graph, error) {
	g := &Graph{
		nodes:     make(map[string]*Node, len(nodes)),
		edges:     make(map[string]*Edge, len(edges)),
		outgoing:  make(map[string][]*Edge),
		edgeOrder: make([]string, 0, len(edges)),
	}

	for _, node := range nodes {
		g.nodes[node.ID] = node
	}

	for _, edge := range edges {
		if _, ok := g.nodes[edge.Source]; !ok {
			return nil, apperror.New(apperror.CodeMalformedData,
				fmt.Sprintf("edge %s references unknown source node %s", edge.ID, edge.Source)).
				WithDetails("edge_id", edge.ID).
				WithDetails("node_id", edge.Source)
		}
		if _, ok := g.nodes[edge.Target]; !ok {
			return nil, apperror.New(apperror.CodeMalformedData,
				fmt.Sprintf("edge %s references unknown target node %s", edge.ID, edge.Target)).
				WithDetails("edge_id", edge.ID).
				WithDetails("node_id", edge.Target)
		}
		if edge.Source == edge.Target {
			return nil, apperror.New(apperror.CodeMalformedData,
				fmt.Sprintf("edge %s is a self-loop at node %s", edge.ID, edge.Source)).
				WithDetails("edge_id", edge.ID)
		}
		if edge.Distance < 0 {
			return nil, apperror.New(apperror.CodeMalformedData,
				fmt.Sprintf("edge %s has negative distance %f", edge.ID, edge.Distance)).
				WithDetails("edge_id", edge.ID).
				WithDetails("distance", edge.Distance)
		}
		if edge.Kind != KindSlope && edge.Kind != KindLift {
			return nil, apperror.New(apperror.CodeMalformedData,
				fmt.Sprintf("edge %s has unknown kind %q", edge.ID, edge.Kind)).
				WithDetails("edge_id", edge.ID)
		}

		g.edges[edge.ID] = edge
		g.edgeOrder = append(g.edgeOrder, edge.ID)
		g.outgoing[edge.Source] = append(g.outgoing[edge.Source], edge)
	}

	return g, nil
}

// Node возвращает узел по ID
func (g *Graph) Node(id string) (*Node, error) {
	node, ok := g.nodes[id]
	if !ok {
		return nil, apperror.New(apperror.CodeNotFound,
			fmt.Sprintf("node %s not found", id)).WithDetails("node_id", id)
	}
	return node, nil
}

// HasNode проверяет наличие узла
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Edge возвращает ребро по ID
func (g *Graph) Edge(id string) (*Edge, error) {
	edge, ok := g.edges[id]
	if !ok {
		return nil, apperror.New(apperror.CodeNotFound,
			fmt.Sprintf("edge %s not found", id)).WithDetails("edge_id", id)
	}
	return edge, nil
}

// Outgoing возвращает исходящие рёбра узла в порядке входных данных.
// Для узла без исходящих рёбер (или неизвестного узла) возвращает пустой срез.
func (g *Graph) Outgoing(nodeID string) []*Edge {
	return g.outgoing[nodeID]
}

// Nodes возвращает все узлы графа
func (g *Graph) Nodes() map[string]*Node {
	return g.nodes
}

// Edges возвращает рёбра графа в исходном порядке
func (g *Graph) Edges() []*Edge {
	result := make([]*Edge, 0, len(g.edgeOrder))
	for _, id := range g.edgeOrder {
		result = append(result, g.edges[id])
	}
	return result
}

// NodeCount возвращает количество узлов
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount возвращает количество рёбер
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// Components возвращает связные компоненты графа без учёта направления
// рёбер, от большей к меньшей. Используется для диагностики загруженных
// данных: у корректного курорта компонента одна.
func (g *Graph) Components() [][]string {
	neighbors := make(map[string][]string, len(g.nodes))
	for _, edge := range g.edges {
		neighbors[edge.Source] = append(neighbors[edge.Source], edge.Target)
		neighbors[edge.Target] = append(neighbors[edge.Target], edge.Source)
	}

	visited := make(map[string]bool, len(g.nodes))
	var components [][]string

	for _, id := range g.sortedNodeIDs() {
		if visited[id] {
			continue
		}

		// BFS от непосещённого узла
		component := []string{id}
		visited[id] = true
		queue := []string{id}
		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, next := range neighbors[current] {
				if !visited[next] {
					visited[next] = true
					component = append(component, next)
					queue = append(queue, next)
				}
			}
		}
		components = append(components, component)
	}

	sort.Slice(components, func(i, j int) bool {
		return len(components[i]) > len(components[j])
	})
	return components
}

func (g *Graph) sortedNodeIDs() []string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
