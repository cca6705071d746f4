// Package shortpath is a small, dependency-light library for shortest paths
// over weighted directed graphs using Dijkstra's algorithm.
//
// What's inside:
//
//	graph/    — Accessor contract and a generic, thread-safe adjacency (Graph)
//	dijkstra/ — single-source engine, path queries and a per-source result Cache
//
// The graph is supplied by the caller in memory, as a mapping from node to
// (neighbor → non-negative weight). Nodes may be any comparable type and
// weights any integer or floating-point type:
//
//	g := graph.FromMap(map[string]map[string]int{
//	    "a": {"b": 1, "d": 1},
//	    "b": {"c": 1},
//	    "d": {"c": 5},
//	})
//	path, cost, err := dijkstra.FindPathWithCost(g, "a", "c") // [a b c] 2
//
// Parsing graphs from files, visualization and persistence are left to the caller.
//
//	go get github.com/katalvlaran/shortpath
package shortpath
