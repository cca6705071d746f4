// Package graph is the read-only view the shortest-path engine walks.
//
// Overview:
//
//   - Accessor is the single contract the engine depends on: given a node,
//     return its outgoing (neighbor, weight) pairs in a deterministic order.
//   - Graph is the concrete adjacency shipped with the module: a mapping of
//     node → (neighbor → weight), generic over any comparable node type and
//     any integer or floating-point weight type.
//   - Nodes that only appear as neighbors are valid vertices with no
//     outgoing edges; unknown nodes simply have no neighbors.
//
// Determinism:
//
//   - Neighbors are returned in insertion order. FromMap inserts them in
//     ascending key order, so two graphs built from equal maps always
//     enumerate identically, regardless of Go's map iteration order.
//
// Validation:
//
//   - Negative weights are outside the algorithm's contract and are never
//     checked on the hot path. Call Validate to fail fast with
//     ErrNegativeWeight (or ErrNaNWeight for float weights) before querying.
//
// Thread safety:
//
//   - Graph guards its storage with a sync.RWMutex, so readers (queries)
//     and writers (AddEdge, AddVertex) never observe torn state.
//   - Version changes on every mutation; caches use it to drop stale results.
//
// Example:
//
//	g := graph.FromMap(map[string]map[string]int{
//	    "a": {"b": 1, "c": 4},
//	    "b": {"c": 1},
//	})
//	for _, e := range g.Neighbors("a") {
//	    fmt.Println(e.To, e.Weight) // b 1, then c 4
//	}
package graph
