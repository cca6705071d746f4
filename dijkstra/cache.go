package dijkstra

import (
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/shortpath/graph"
)

// Cache memoizes single-source results for one graph, keyed by source node.
//
// It is an explicit object handed to whoever needs it; the package itself
// keeps no state. Concurrent lookups of the same uncached source share a
// single computation, and published results are never modified.
//
// If the graph implements graph.Versioned (graph.Graph does), every lookup
// compares the current version with the one the cache was filled at and
// drops all entries when they differ. Other accessors must be immutable, or
// the caller must call Reset after changing them.
type Cache[N comparable, W graph.Weight] struct {
	g     graph.Accessor[N, W]
	opts  []Option[N, W]
	group singleflight.Group

	mu      sync.Mutex
	results map[N]*Result[N, W]
	version uint64 // graph version the results were computed at

	computed atomic.Uint64
}

// NewCache creates an empty cache over g. opts are applied to every
// single-source computation the cache performs.
//
// Invalid option values panic here rather than on the first lookup.
func NewCache[N comparable, W graph.Weight](g graph.Accessor[N, W], opts ...Option[N, W]) *Cache[N, W] {
	check := DefaultOptions[N, W]()
	for _, opt := range opts {
		opt(&check)
	}

	c := &Cache[N, W]{
		g:       g,
		opts:    opts,
		results: make(map[N]*Result[N, W]),
	}
	c.version = c.currentVersion()

	return c
}

// Get returns the single-source result for source, computing it on first use.
func (c *Cache[N, W]) Get(source N) *Result[N, W] {
	if res, ok := c.lookup(source); ok {
		return res
	}

	v, _, _ := c.group.Do(flightKey(source), func() (any, error) {
		// Another flight may have published while we were queued.
		if res, ok := c.lookup(source); ok {
			return res, nil
		}

		c.mu.Lock()
		version := c.version
		c.mu.Unlock()

		res := SingleSource(c.g, source, c.opts...)
		c.computed.Add(1)

		c.mu.Lock()
		// Results computed against an older graph are returned but not kept.
		if c.version == version {
			c.results[source] = res
		}
		c.mu.Unlock()

		return res, nil
	})

	res := v.(*Result[N, W])
	if res.source != source {
		// Two distinct sources with the same printed form shared a flight.
		return SingleSource(c.g, source, c.opts...)
	}

	return res
}

// FindPath answers a path query from the cached result for source.
// Same contract as the package-level FindPath.
func (c *Cache[N, W]) FindPath(source, target N) ([]N, error) {
	path, _, err := c.FindPathWithCost(source, target)

	return path, err
}

// FindPathWithCost answers a path-and-cost query from the cached result for source.
// Same contract as the package-level FindPathWithCost.
func (c *Cache[N, W]) FindPathWithCost(source, target N) ([]N, W, error) {
	if c.g == nil {
		var zero W
		return nil, zero, ErrNilGraph
	}
	if source == target {
		return []N{source}, 0, nil
	}

	return c.Get(source).PathTo(target)
}

// Forget drops the cached result for source, if any.
func (c *Cache[N, W]) Forget(source N) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.results, source)
}

// Reset drops every cached result.
func (c *Cache[N, W]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.results = make(map[N]*Result[N, W])
	c.version = c.currentVersion()
}

// Len returns the number of cached sources.
func (c *Cache[N, W]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.syncVersionLocked()

	return len(c.results)
}

// Computations returns how many single-source runs the cache has performed.
func (c *Cache[N, W]) Computations() uint64 { return c.computed.Load() }

func (c *Cache[N, W]) lookup(source N) (*Result[N, W], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.syncVersionLocked()
	res, ok := c.results[source]

	return res, ok
}

// syncVersionLocked drops all results if the graph changed since they were stored.
func (c *Cache[N, W]) syncVersionLocked() {
	if v := c.currentVersion(); v != c.version {
		c.results = make(map[N]*Result[N, W])
		c.version = v
	}
}

func (c *Cache[N, W]) currentVersion() uint64 {
	if vg, ok := c.g.(graph.Versioned); ok {
		return vg.Version()
	}

	return 0
}

// flightKey maps a node to a singleflight key. Collisions are possible for
// exotic node types and are resolved by Get.
func flightKey[N comparable](n N) string {
	return fmt.Sprintf("%T:%#v", n, n)
}
