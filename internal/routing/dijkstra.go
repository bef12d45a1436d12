package routing

import (
	"container/heap"

	"github.com/ThomasMeMan2/skinavigator/pkg/apperror"
	"github.com/ThomasMeMan2/skinavigator/pkg/domain"
)

// =============================================================================
// Dijkstra's Algorithm
// =============================================================================
//
// Single-source shortest path over the resort graph with travel time as the
// edge weight. All weights are non-negative (impassable edges are simply
// skipped), so the search can terminate as soon as the destination is
// finalized.
//
// The priority queue never removes or re-keys entries: relaxation inserts a
// duplicate and the finalized set skips stale pops. This keeps the heap code
// trivial at the cost of a few redundant entries.
//
// Time Complexity: O((V + E) log V) with binary heap
// Space Complexity: O(V)
// =============================================================================

// searchResult предшественники и дистанции, найденные поиском
type searchResult struct {
	dist     map[string]float64
	prevNode map[string]string
	prevEdge map[string]*domain.Edge
}

// pqItem элемент очереди с приоритетом
type pqItem struct {
	node     string
	distance float64
	seq      int // порядок вставки, разрешает ничьи детерминированно
	index    int
}

// priorityQueue реализует heap.Interface, min-куча по дистанции
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].distance != pq[j].distance {
		return pq[i].distance < pq[j].distance
	}
	return pq[i].seq < pq[j].seq
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	n := len(*pq)
	item := x.(*pqItem)
	item.index = n
	*pq = append(*pq, item)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // Avoid memory leak
	item.index = -1
	*pq = old[0 : n-1]
	return item
}

// shortestPath ищет кратчайший по времени путь от start к end.
//
// Возвращает SAME_LOCATION, если start == end (поиск не выполняется),
// NOT_FOUND при неизвестных узлах и NO_ROUTE, если end недостижим
// при текущих исключениях.
func shortestPath(g *domain.Graph, start, end string, exclusions domain.Exclusions) (*searchResult, error) {
	if !g.HasNode(start) {
		return nil, apperror.NewWithField(apperror.CodeNotFound, "start node not found", "from").
			WithDetails("node_id", start)
	}
	if !g.HasNode(end) {
		return nil, apperror.NewWithField(apperror.CodeNotFound, "end node not found", "to").
			WithDetails("node_id", end)
	}
	if start == end {
		return nil, apperror.ErrSameLocation
	}

	dist := make(map[string]float64, g.NodeCount())
	prevNode := make(map[string]string)
	prevEdge := make(map[string]*domain.Edge)
	finalized := make(map[string]bool, g.NodeCount())

	dist[start] = 0

	pq := make(priorityQueue, 0, g.NodeCount())
	heap.Init(&pq)
	seq := 0
	heap.Push(&pq, &pqItem{node: start, distance: 0, seq: seq})

	for pq.Len() > 0 {
		current := heap.Pop(&pq).(*pqItem)
		u := current.node

		// Дубликаты вставляются вместо decrease-key, устаревшие
		// записи отбрасываются здесь
		if finalized[u] {
			continue
		}
		finalized[u] = true

		// Дистанция до end финализирована, дальше искать незачем
		if u == end {
			break
		}

		for _, edge := range g.Outgoing(u) {
			cost := domain.Cost(edge, exclusions)
			if domain.IsInfinite(cost) {
				continue
			}

			v := edge.Target
			alt := dist[u] + cost

			old, seen := dist[v]
			if !seen || alt < old {
				dist[v] = alt
				prevNode[v] = u
				prevEdge[v] = edge
				seq++
				heap.Push(&pq, &pqItem{node: v, distance: alt, seq: seq})
			}
		}
	}

	if _, ok := dist[end]; !ok {
		return nil, apperror.New(apperror.CodeNoRoute, "no route between the requested locations").
			WithDetails("from", start).
			WithDetails("to", end)
	}

	return &searchResult{dist: dist, prevNode: prevNode, prevEdge: prevEdge}, nil
}
