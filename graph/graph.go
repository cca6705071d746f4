// File: graph.go
// Role: concrete adjacency (Graph), builders (New, FromMap, FromMapFunc) and read APIs.
// Determinism:
//   - Vertices() returns vertices in first-seen order.
//   - Neighbors() returns edges in insertion order; replacing a weight keeps the slot.
// Concurrency:
//   - Reads hold mu.RLock, mutations hold mu.Lock; returned slices are copies.

package graph

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Graph is a directed, weighted adjacency: node → ordered (neighbor, weight) list.
//
// The zero value is not usable; construct with New, FromMap or FromMapFunc.
// A nil *Graph behaves like an empty graph for all read methods.
type Graph[N comparable, W Weight] struct {
	mu sync.RWMutex // guards everything below

	version uint64                 // bumped on every mutation
	order   []N                    // vertices in first-seen order
	adj     map[N]*adjacency[N, W] // vertex → outgoing edges
	size    int                    // number of edges
}

// adjacency keeps the outgoing edges of a single vertex in insertion order
// plus an index for O(1) weight lookup and replacement.
type adjacency[N comparable, W Weight] struct {
	edges []Edge[N, W]
	index map[N]int // neighbor → position in edges
}

// New creates an empty Graph.
// Complexity: O(1)
func New[N comparable, W Weight]() *Graph[N, W] {
	return &Graph[N, W]{
		adj: make(map[N]*adjacency[N, W]),
	}
}

// FromMap builds a Graph from a mapping-of-mappings representation.
// Sources and each neighbor set are inserted in ascending key order, so the
// result does not depend on map iteration order.
// Complexity: O(V log V + E log d)
func FromMap[N cmp.Ordered, W Weight](m map[N]map[N]W) *Graph[N, W] {
	return FromMapFunc(m, cmp.Compare[N])
}

// FromMapFunc is FromMap for node types without a natural order.
// compare must be a strict weak ordering consistent with ==; it fixes the
// order in which sources and neighbors are inserted.
func FromMapFunc[N comparable, W Weight](m map[N]map[N]W, compare func(a, b N) int) *Graph[N, W] {
	g := New[N, W]()

	sources := make([]N, 0, len(m))
	for u := range m {
		sources = append(sources, u)
	}
	slices.SortFunc(sources, compare)

	var targets []N
	for _, u := range sources {
		g.addVertexLocked(u)

		targets = targets[:0]
		for v := range m[u] {
			targets = append(targets, v)
		}
		slices.SortFunc(targets, compare)
		for _, v := range targets {
			g.addEdgeLocked(u, v, m[u][v])
		}
	}

	return g
}

// AddVertex ensures n exists as a vertex. Adding an existing vertex is a no-op.
// Complexity: O(1)
func (g *Graph[N, W]) AddVertex(n N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(n)
}

// AddEdge adds the directed edge from→to with weight w, creating both
// endpoints if needed. If the edge already exists its weight is replaced and
// its position among from's neighbors is kept.
//
// AddEdge does not reject negative weights; see Validate.
// Complexity: O(1) amortized
func (g *Graph[N, W]) AddEdge(from, to N, w W) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addEdgeLocked(from, to, w)
}

// AddUndirected adds both a→b and b→a with weight w.
func (g *Graph[N, W]) AddUndirected(a, b N, w W) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addEdgeLocked(a, b, w)
	g.addEdgeLocked(b, a, w)
}

func (g *Graph[N, W]) addVertexLocked(n N) *adjacency[N, W] {
	if a, ok := g.adj[n]; ok {
		return a
	}
	a := &adjacency[N, W]{index: make(map[N]int)}
	g.adj[n] = a
	g.order = append(g.order, n)
	g.version++

	return a
}

func (g *Graph[N, W]) addEdgeLocked(from, to N, w W) {
	a := g.addVertexLocked(from)
	g.addVertexLocked(to)

	if i, ok := a.index[to]; ok {
		a.edges[i].Weight = w
	} else {
		a.index[to] = len(a.edges)
		a.edges = append(a.edges, Edge[N, W]{To: to, Weight: w})
		g.size++
	}
	g.version++
}

// Neighbors returns the outgoing edges of n in insertion order.
// Unknown vertices and vertices without outgoing edges yield nil.
// The returned slice is a copy and may be modified by the caller.
// Complexity: O(d)
func (g *Graph[N, W]) Neighbors(n N) []Edge[N, W] {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[n]
	if !ok || len(a.edges) == 0 {
		return nil
	}

	return slices.Clone(a.edges)
}

// Weight returns the weight of from→to and whether that edge exists.
// Complexity: O(1)
func (g *Graph[N, W]) Weight(from, to N) (W, bool) {
	var zero W
	if g == nil {
		return zero, false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	a, ok := g.adj[from]
	if !ok {
		return zero, false
	}
	i, ok := a.index[to]
	if !ok {
		return zero, false
	}

	return a.edges[i].Weight, true
}

// HasVertex reports whether n is a vertex, either as a source of edges or
// as a neighbor of one.
func (g *Graph[N, W]) HasVertex(n N) bool {
	if g == nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[n]

	return ok
}

// Vertices returns every vertex in first-seen order.
func (g *Graph[N, W]) Vertices() []N {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Clone(g.order)
}

// Order returns the number of vertices.
func (g *Graph[N, W]) Order() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// Size returns the number of directed edges.
func (g *Graph[N, W]) Size() int {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// Version returns a counter that changes on every mutation.
func (g *Graph[N, W]) Version() uint64 {
	if g == nil {
		return 0
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.version
}

// ToMap returns a fresh mapping-of-mappings copy of the graph.
// Vertices without outgoing edges appear only as neighbors.
func (g *Graph[N, W]) ToMap() map[N]map[N]W {
	out := make(map[N]map[N]W)
	if g == nil {
		return out
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u, a := range g.adj {
		if len(a.edges) == 0 {
			continue
		}
		row := make(map[N]W, len(a.edges))
		for _, e := range a.edges {
			row[e.To] = e.Weight
		}
		out[u] = row
	}

	return out
}

// Validate scans every edge and reports the first malformed weight found,
// in vertex then neighbor insertion order.
//
// Errors:
//   - ErrNegativeWeight: some weight is below zero.
//   - ErrNaNWeight: some floating-point weight is NaN.
//
// Complexity: O(V + E)
func (g *Graph[N, W]) Validate() error {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, u := range g.order {
		for _, e := range g.adj[u].edges {
			if isNaN(e.Weight) {
				return fmt.Errorf("%w: edge %v→%v", ErrNaNWeight, u, e.To)
			}
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	return nil
}

// isNaN is only ever true for float kinds.
func isNaN[W Weight](w W) bool {
	return w != w
}
