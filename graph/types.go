package graph

import "errors"

// Sentinel errors reported by Validate.
var (
	// ErrNegativeWeight indicates an edge with a weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrNaNWeight indicates a floating-point edge weight that is NaN.
	ErrNaNWeight = errors.New("graph: NaN edge weight")
)

// Weight is the set of numeric kinds usable as edge weights.
//
// Path costs are accumulated in the weight type itself. For integer kinds a
// path whose total would overflow the type is never reported; pick a type
// wide enough for the longest path you care about (uint8 tops out at 255).
type Weight interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Edge is one outgoing adjacency entry: the neighbor reached and the cost
// of getting there.
type Edge[N comparable, W Weight] struct {
	// To is the neighbor at the head of the edge.
	To N

	// Weight is the non-negative traversal cost.
	Weight W
}

// Accessor enumerates outgoing edges of a node.
//
// Neighbors must return an empty (or nil) slice for nodes with no outgoing
// edges and for nodes the graph does not know about. The order of the
// returned edges must be the same every time for the same graph, since it
// decides which of several equal-cost paths is reported.
// Implementations are treated as immutable for the duration of a query.
type Accessor[N comparable, W Weight] interface {
	Neighbors(n N) []Edge[N, W]
}

// Versioned is implemented by accessors that can report mutations.
// The value must change whenever the neighbor relation changes.
type Versioned interface {
	Version() uint64
}
