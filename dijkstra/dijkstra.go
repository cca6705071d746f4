// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over any graph.Accessor with non-negative weights.
//
// Notes on implementation choices:
//
//   - Costs absent from the map mean "infinite"; only reachable nodes are recorded.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries when they are popped for an already visited node.
//   - Equal-cost entries pop in reverse push order (last discovered first), so the
//     reported path only depends on the accessor's neighbor order, never on map order.
//   - Negative weights are not detected here; see graph.Graph.Validate.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/shortpath/graph"
)

// SingleSource computes the cheapest cost from source to every node reachable
// in g, together with the predecessor of each such node on its cheapest path.
//
// It never fails: unreachable nodes are simply absent from the result. A nil
// accessor behaves like an empty graph, so the result holds only the source.
// Options may cap exploration (WithMaxCost), wall off heavy edges
// (WithImpassable) or observe progress (WithOnVisit, WithOnRelax).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func SingleSource[N comparable, W graph.Weight](g graph.Accessor[N, W], source N, opts ...Option[N, W]) *Result[N, W] {
	cfg := DefaultOptions[N, W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[N, W]{
		g:       g,
		options: cfg,
		cost:    make(map[N]W),
		prev:    make(map[N]N),
		visited: make(map[N]struct{}),
	}
	r.init(source)
	r.process()

	return &Result[N, W]{
		source: source,
		prev:   r.prev,
		costs:  r.cost,
	}
}

// runner holds the mutable state for a single Dijkstra execution.
// Nothing in it is shared with other runs.
type runner[N comparable, W graph.Weight] struct {
	g       graph.Accessor[N, W] // read-only within a run
	options Options[N, W]
	cost    map[N]W        // best known cost; final once the node is visited
	prev    map[N]N        // predecessor on the cheapest known path
	visited map[N]struct{} // finalized nodes
	pq      frontier[N, W] // min-heap with stale entries
	seq     uint64         // push counter used for tie-breaking
}

// init seeds the frontier with the source at cost zero.
func (r *runner[N, W]) init(source N) {
	r.cost[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)
}

func (r *runner[N, W]) push(n N, cost W) {
	r.seq++
	heap.Push(&r.pq, &frontierItem[N, W]{id: n, cost: cost, seq: r.seq})
}

// process pops the cheapest node until the frontier is exhausted.
func (r *runner[N, W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*frontierItem[N, W])
		u := item.id

		// Stale entry left behind by an earlier improvement.
		if _, done := r.visited[u]; done {
			continue
		}
		r.visited[u] = struct{}{}
		r.options.OnVisit(u, r.cost[u])

		r.relax(u)
	}
}

// relax tries to improve every unvisited neighbor of the finalized node u.
func (r *runner[N, W]) relax(u N) {
	if r.g == nil {
		return
	}
	base := r.cost[u]

	for _, e := range r.g.Neighbors(u) {
		v := e.To
		if r.options.HasImpassable && e.Weight >= r.options.Impassable {
			continue
		}
		if _, done := r.visited[v]; done {
			continue
		}

		candidate := base + e.Weight
		// A wrapped integer sum is not a real cost; treat the edge as unusable.
		if e.Weight >= 0 && candidate < base {
			continue
		}
		if r.options.HasMaxCost && candidate > r.options.MaxCost {
			continue
		}
		// Strict improvement only; equal-cost alternatives keep the first predecessor.
		if cur, seen := r.cost[v]; seen && candidate >= cur {
			continue
		}

		r.cost[v] = candidate
		r.prev[v] = u
		r.options.OnRelax(u, v, candidate)
		r.push(v, candidate)
	}
}

// frontierItem is one heap entry; several may exist per node.
type frontierItem[N comparable, W graph.Weight] struct {
	id   N
	cost W
	seq  uint64
}

// frontier is a min-heap ordered by cost, then by seq descending.
type frontier[N comparable, W graph.Weight] []*frontierItem[N, W]

// Len returns the number of items in the heap.
func (pq frontier[N, W]) Len() int { return len(pq) }

// Less orders by cost; among equal costs the most recently pushed wins.
func (pq frontier[N, W]) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].seq > pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier[N, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a *frontierItem.
func (pq *frontier[N, W]) Push(x any) { *pq = append(*pq, x.(*frontierItem[N, W])) }

// Pop is called by heap.Pop and removes the last element.
func (pq *frontier[N, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
