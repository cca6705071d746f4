// Package dijkstra computes shortest paths with Dijkstra's algorithm over any
// graph.Accessor whose edge weights are non-negative.
//
// Overview:
//
//   - SingleSource computes, for one source, the cheapest cost to every
//     reachable node and the predecessor tree that realizes those costs.
//   - FindPath / FindPathWithCost answer a single source→target query by running
//     SingleSource and walking the predecessor tree back from the target.
//   - Cache memoizes SingleSource results per source for repeated queries.
//
// Key features:
//
//   - Generic over node type (any comparable) and weight type (any integer or float kind).
//   - Deterministic: among equal-cost frontier entries the most recently pushed pops
//     first, and neighbors are expanded in the accessor's order, so the same graph
//     always yields the same paths.
//   - WithMaxCost: stops recording nodes beyond a cost ceiling.
//   - WithImpassable: treats edges with weight ≥ threshold as walls.
//   - WithOnVisit / WithOnRelax: observation hooks for tracing or metrics.
//
// Results:
//
//   - Costs contains exactly the reachable nodes; the source maps to 0.
//   - Predecessors contains exactly the reachable nodes except the source.
//   - Unreachable nodes are absent from both; SingleSource itself never fails.
//
// Error handling (sentinel errors):
//
//   - ErrUnreachable:
//     Returned by path queries when the target has no path from the source.
//     Targets that do not appear in the graph at all get the same error; the
//     two causes are deliberately not distinguished.
//   - ErrNilGraph:
//     Returned by path queries given a nil accessor.
//   - ErrBadMaxCost / ErrBadImpassable:
//     Panicked with when an option is given an invalid value.
//
// A query whose target equals its source is never an error: it returns the
// single-element path [source] with cost 0.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); the heap may hold up to E entries under lazy decrease-key.
//
// Thread safety:
//
//   - Every call owns its working maps and heap; concurrent queries over the same
//     accessor need no coordination as long as the accessor is not being mutated
//     (graph.Graph is itself safe for concurrent use).
//   - Result values are immutable and safe to share.
//   - Cache is safe for concurrent use; concurrent lookups of one source share a
//     single computation (golang.org/x/sync/singleflight).
//
// Negative weights are outside the contract and yield undefined results; call
// graph.Graph.Validate first when the input is untrusted.
//
// Example usage:
//
//	g := graph.FromMap(map[string]map[string]int{
//	    "a": {"b": 10, "d": 1},
//	    "d": {"b": 1},
//	})
//	path, cost, err := dijkstra.FindPathWithCost(g, "a", "b")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(path, cost) // [a d b] 2
package dijkstra
