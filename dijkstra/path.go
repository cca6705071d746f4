package dijkstra

import "github.com/katalvlaran/shortpath/graph"

// FindPath returns the cheapest path from source to target, both endpoints included.
//
// Errors:
//   - ErrNilGraph:    g is nil.
//   - ErrUnreachable: target has no path from source, or does not appear in g.
//
// A query with target == source always succeeds with [source].
func FindPath[N comparable, W graph.Weight](g graph.Accessor[N, W], source, target N, opts ...Option[N, W]) ([]N, error) {
	path, _, err := FindPathWithCost(g, source, target, opts...)

	return path, err
}

// FindPathWithCost is FindPath that also returns the total weight of the path.
// The cost is zero whenever an error is returned.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for the single-source run, plus O(path length).
//   - Space: O(V + E)
func FindPathWithCost[N comparable, W graph.Weight](g graph.Accessor[N, W], source, target N, opts ...Option[N, W]) ([]N, W, error) {
	if g == nil {
		var zero W
		return nil, zero, ErrNilGraph
	}
	if source == target {
		return []N{source}, 0, nil
	}

	return SingleSource(g, source, opts...).PathTo(target)
}
