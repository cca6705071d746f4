// Package dijkstra defines sentinel errors and functional options for the
// single-source engine and the path queries built on top of it.
//
// Options:
//
//	– MaxCost:    optional cap; nodes whose cost would exceed it are not recorded.
//	– Impassable: edges with weight >= this threshold are treated as walls.
//	– OnVisit:    hook fired when a node's cost is finalized.
//	– OnRelax:    hook fired whenever a cheaper tentative cost is recorded.
//
// Errors (sentinel):
//
//	– ErrNilGraph      if a path query receives a nil accessor.
//	– ErrUnreachable   if the target has no path from the source, or is unknown.
//	– ErrBadMaxCost    (panic) if MaxCost < 0.
//	– ErrBadImpassable (panic) if Impassable <= 0.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/shortpath/graph"
)

// Sentinel errors returned (or panicked with) by this package.
var (
	// ErrNilGraph indicates that a nil graph.Accessor was passed to a path query.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnreachable indicates that no path leads from the source to the target.
	// Targets that do not appear in the graph at all are reported the same way.
	ErrUnreachable = errors.New("dijkstra: target unreachable from source")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("dijkstra: MaxCost must be non-negative")

	// ErrBadImpassable indicates that the impassable threshold was zero or negative,
	// which would wall off every edge including zero-weight ones.
	ErrBadImpassable = errors.New("dijkstra: Impassable threshold must be positive")
)

// Options configures a single-source computation.
//
// MaxCost / Impassable are only honored when the matching Has* flag is set;
// the zero Options value explores the whole reachable component.
type Options[N comparable, W graph.Weight] struct {
	MaxCost       W    // largest cost recorded (inclusive)
	HasMaxCost    bool // whether MaxCost applies
	Impassable    W    // edges with weight >= Impassable are skipped
	HasImpassable bool // whether Impassable applies

	// OnVisit is called once per node, when its cost becomes final.
	OnVisit func(n N, cost W)

	// OnRelax is called when to's tentative cost improves via from.
	OnRelax func(from, to N, cost W)
}

// Option represents a functional option for configuring Dijkstra.
type Option[N comparable, W graph.Weight] func(*Options[N, W])

// DefaultOptions returns Options with no caps, no walls and no-op hooks.
func DefaultOptions[N comparable, W graph.Weight]() Options[N, W] {
	return Options[N, W]{
		OnVisit: func(N, W) {},
		OnRelax: func(N, N, W) {},
	}
}

// WithMaxCost stops recording nodes whose cost from the source exceeds max.
// Panics with ErrBadMaxCost if max < 0.
func WithMaxCost[N comparable, W graph.Weight](max W) Option[N, W] {
	return func(o *Options[N, W]) {
		if max < 0 {
			// Invalid configuration is a programming error, surfaced at apply time.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
		o.HasMaxCost = true
	}
}

// WithImpassable treats every edge with weight >= threshold as absent.
// Panics with ErrBadImpassable if threshold <= 0.
func WithImpassable[N comparable, W graph.Weight](threshold W) Option[N, W] {
	return func(o *Options[N, W]) {
		if threshold <= 0 {
			panic(ErrBadImpassable.Error())
		}
		o.Impassable = threshold
		o.HasImpassable = true
	}
}

// WithOnVisit registers a callback run when a node is finalized.
func WithOnVisit[N comparable, W graph.Weight](fn func(n N, cost W)) Option[N, W] {
	return func(o *Options[N, W]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnRelax registers a callback run on every successful relaxation.
func WithOnRelax[N comparable, W graph.Weight](fn func(from, to N, cost W)) Option[N, W] {
	return func(o *Options[N, W]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
