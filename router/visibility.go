package router

import (
	"container/heap"

	"github.com/meltpath/layerplan/geom"
)

// VisibilityRouter finds interior travel paths using a visibility graph over
// the inside-boundary polygons' own vertices, solved with Dijkstra. It is
// the Router implementation the planner uses by default; see the package
// doc for the algorithm and complexity notes.
type VisibilityRouter struct{}

// NewVisibilityRouter returns a ready-to-use VisibilityRouter. It carries no
// state between calls: each Route call rebuilds its graph from scratch, so
// a VisibilityRouter value may be shared and reused across layers freely.
func NewVisibilityRouter() *VisibilityRouter {
	return &VisibilityRouter{}
}

// Route implements Router.
func (VisibilityRouter) Route(inside geom.PolygonSet, from, to geom.Point, _ int) (Result, error) {
	if len(inside) == 0 {
		return Result{}, ErrNilPolygonSet
	}

	if segmentInside(inside, from, to) {
		return Result{Kind: Direct}, nil
	}

	nodes, boundaryOf := buildNodes(inside, from, to)
	adj := buildVisibilityGraph(inside, nodes, boundaryOf)

	const fromIdx, toIdx = 0, 1
	dist, prev, reached := dijkstraShortestPath(adj, fromIdx, toIdx)
	if !reached {
		return Result{Kind: NoPath}, nil
	}
	_ = dist

	path := reconstructPath(prev, fromIdx, toIdx)
	waypoints := make([]geom.Point, 0, len(path)-2)
	for _, idx := range path[1 : len(path)-1] {
		waypoints = append(waypoints, nodes[idx])
	}

	return Result{Kind: Interior, Waypoints: waypoints}, nil
}

// segmentInside reports whether the straight segment a-b never leaves the
// polygon set: its midpoint lies inside the set, and it does not properly
// cross any boundary edge.
func segmentInside(inside geom.PolygonSet, a, b geom.Point) bool {
	mid := geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	if !geom.PointInSet(mid, inside) {
		return false
	}
	for _, poly := range inside {
		n := len(poly)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if segmentsCross(a, b, poly[i], poly[j]) {
				return false
			}
		}
	}
	return true
}

// buildNodes lays out the graph's node list deterministically: from (index
// 0), to (index 1), then every polygon's vertices in polygon and vertex
// order. boundaryOf maps node index to (polygon index, vertex index),
// with polygon == -1 for from/to.
func buildNodes(inside geom.PolygonSet, from, to geom.Point) ([]geom.Point, [][2]int) {
	nodes := []geom.Point{from, to}
	boundaryOf := [][2]int{{-1, -1}, {-1, -1}}

	for pi, poly := range inside {
		for vi, v := range poly {
			nodes = append(nodes, v)
			boundaryOf = append(boundaryOf, [2]int{pi, vi})
		}
	}
	return nodes, boundaryOf
}

// buildVisibilityGraph connects every pair of nodes whose straight segment
// stays inside the boundary, plus every polygon's own consecutive edges
// (which are always valid to walk along, being the boundary itself rather
// than interior space that could be exited).
func buildVisibilityGraph(inside geom.PolygonSet, nodes []geom.Point, boundaryOf [][2]int) map[int][]edge {
	adj := make(map[int][]edge, len(nodes))

	polyVertexStart := make([]int, len(inside))
	cursor := 2
	for pi, poly := range inside {
		polyVertexStart[pi] = cursor
		cursor += len(poly)
	}

	// Rule 1: consecutive polygon edges are always traversable.
	for pi, poly := range inside {
		n := len(poly)
		base := polyVertexStart[pi]
		for vi := 0; vi < n; vi++ {
			next := (vi + 1) % n
			connect(adj, nodes, base+vi, base+next)
		}
	}

	// Rule 2: any other pair whose straight segment stays inside.
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if sameOrAdjacentBoundary(boundaryOf[i], boundaryOf[j], inside) {
				continue
			}
			if segmentInside(inside, nodes[i], nodes[j]) {
				connect(adj, nodes, i, j)
			}
		}
	}

	return adj
}

// sameOrAdjacentBoundary reports whether i and j were already connected by
// Rule 1, avoiding a redundant visibility check and a duplicate edge.
func sameOrAdjacentBoundary(a, b [2]int, inside geom.PolygonSet) bool {
	if a[0] != b[0] || a[0] == -1 {
		return false
	}
	n := len(inside[a[0]])
	diff := a[1] - b[1]
	if diff < 0 {
		diff = -diff
	}
	return diff == 1 || diff == n-1
}

type edge struct {
	to     int
	weight int64
}

func connect(adj map[int][]edge, nodes []geom.Point, i, j int) {
	w := geom.Dist(nodes[i], nodes[j])
	adj[i] = append(adj[i], edge{to: j, weight: w})
	adj[j] = append(adj[j], edge{to: i, weight: w})
}

// dijkstraShortestPath runs Dijkstra from src over adj until dst is settled
// (or every node reachable from src has been visited), using a lazy decrease-key container/heap priority queue: stale
// entries are pushed rather than updated in place, and skipped on pop via
// the visited set. This mirrors the approach in the teacher corpus's
// dijkstra.Dijkstra.
func dijkstraShortestPath(adj map[int][]edge, src, dst int) (dist map[int]int64, prev map[int]int, reached bool) {
	dist = map[int]int64{src: 0}
	prev = map[int]int{}
	visited := map[int]bool{}

	pq := &nodeHeap{{node: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(heapItem)
		if visited[cur.node] {
			continue
		}
		visited[cur.node] = true

		if cur.node == dst {
			return dist, prev, true
		}

		for _, e := range adj[cur.node] {
			if visited[e.to] {
				continue
			}
			nd := cur.dist + e.weight
			if d, ok := dist[e.to]; !ok || nd < d {
				dist[e.to] = nd
				prev[e.to] = cur.node
				heap.Push(pq, heapItem{node: e.to, dist: nd})
			}
		}
	}

	return dist, prev, false
}

// reconstructPath walks prev backward from dst to src and returns the
// resulting node-index path from src to dst, inclusive of both endpoints.
func reconstructPath(prev map[int]int, src, dst int) []int {
	path := []int{dst}
	for path[len(path)-1] != src {
		path = append(path, prev[path[len(path)-1]])
	}
	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type heapItem struct {
	node int
	dist int64
}

type nodeHeap []heapItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(heapItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
