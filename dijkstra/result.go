package dijkstra

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/shortpath/graph"
)

// Result is the single-source outcome: the cheapest cost to every reachable
// node and the predecessor tree rooted at the source.
//
// A Result is immutable once returned by SingleSource and can be shared
// between goroutines, or kept to answer many target queries for one source.
type Result[N comparable, W graph.Weight] struct {
	source N
	prev   map[N]N // reachable node → predecessor; source absent
	costs  map[N]W // reachable node → cost; source → 0
}

// Source returns the node the result was computed from.
func (r *Result[N, W]) Source() N { return r.source }

// Len returns the number of reachable nodes, the source included.
func (r *Result[N, W]) Len() int { return len(r.costs) }

// Reachable reports whether n has a path from the source.
func (r *Result[N, W]) Reachable(n N) bool {
	_, ok := r.costs[n]

	return ok
}

// Cost returns the cheapest cost from the source to n, and false if n is unreachable.
func (r *Result[N, W]) Cost(n N) (W, bool) {
	c, ok := r.costs[n]

	return c, ok
}

// Predecessor returns the node preceding n on its cheapest path.
// The source and unreachable nodes have none.
func (r *Result[N, W]) Predecessor(n N) (N, bool) {
	p, ok := r.prev[n]

	return p, ok
}

// Predecessors returns a copy of the predecessor map. The source is absent.
func (r *Result[N, W]) Predecessors() map[N]N { return maps.Clone(r.prev) }

// Costs returns a copy of the cost map. The source maps to zero.
func (r *Result[N, W]) Costs() map[N]W { return maps.Clone(r.costs) }

// PathTo reconstructs the cheapest path from the source to target by walking
// the predecessor tree backwards, and returns it together with its cost.
//
// Behavior:
//   - target == source: returns [source] and cost 0.
//   - target unreachable or unknown: returns an error wrapping ErrUnreachable.
//
// Complexity: O(path length)
func (r *Result[N, W]) PathTo(target N) ([]N, W, error) {
	if target == r.source {
		return []N{r.source}, 0, nil
	}

	cost, ok := r.costs[target]
	if !ok {
		var zero W
		return nil, zero, fmt.Errorf("%w: %v→%v", ErrUnreachable, r.source, target)
	}

	path := []N{target}
	for cur := target; cur != r.source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, cost, nil
}
