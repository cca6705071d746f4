package dijkstra_test

import (
	"math/rand"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortpath/graph"
)

// fixtures mirrors testdata/scenarios.yaml.
type fixtures struct {
	Graphs map[string]map[string]map[string]int `yaml:"graphs"`

	Paths []struct {
		Name        string   `yaml:"name"`
		Graph       string   `yaml:"graph"`
		Source      string   `yaml:"source"`
		Target      string   `yaml:"target"`
		Path        []string `yaml:"path"`
		Cost        int      `yaml:"cost"`
		Unreachable bool     `yaml:"unreachable"`
	} `yaml:"paths"`

	SingleSource []struct {
		Name         string            `yaml:"name"`
		Graph        string            `yaml:"graph"`
		Source       string            `yaml:"source"`
		Predecessors map[string]string `yaml:"predecessors"`
		Costs        map[string]int    `yaml:"costs"`
	} `yaml:"single_source"`
}

// loadFixtures decodes testdata/scenarios.yaml.
func loadFixtures(t testing.TB) fixtures {
	t.Helper()

	raw, err := os.ReadFile("testdata/scenarios.yaml")
	require.NoError(t, err)

	var fx fixtures
	require.NoError(t, yaml.Unmarshal(raw, &fx))
	require.NotEmpty(t, fx.Graphs)

	return fx
}

// fixtureGraph builds the named fixture graph.
func fixtureGraph(t testing.TB, fx fixtures, name string) *graph.Graph[string, int] {
	t.Helper()

	m, ok := fx.Graphs[name]
	require.True(t, ok, "unknown fixture graph %q", name)

	return graph.FromMap(m)
}

// weightedGraph is the weighted reference graph used across tests.
func weightedGraph() *graph.Graph[string, int] {
	return graph.FromMap(map[string]map[string]int{
		"a": {"b": 10, "c": 100, "d": 1},
		"b": {"c": 10},
		"d": {"b": 1, "e": 1},
		"e": {"f": 1},
		"f": {"c": 1},
		"g": {"b": 1},
	})
}

// randomGraph builds a seeded random digraph over n integer nodes with
// weights in [0, maxW]. Density p in (0, 1].
func randomGraph(seed int64, n int, p float64, maxW int) *graph.Graph[int, int] {
	rng := rand.New(rand.NewSource(seed))
	g := graph.New[int, int]()
	for u := 0; u < n; u++ {
		g.AddVertex(u)
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < p {
				g.AddEdge(u, v, rng.Intn(maxW+1))
			}
		}
	}

	return g
}

// bellmanFord is an independent O(V·E) oracle for the cheapest costs.
func bellmanFord(g *graph.Graph[int, int], source int) map[int]int {
	dist := map[int]int{source: 0}
	vertices := g.Vertices()
	for i := 0; i < len(vertices); i++ {
		changed := false
		for _, u := range vertices {
			du, ok := dist[u]
			if !ok {
				continue
			}
			for _, e := range g.Neighbors(u) {
				if dv, seen := dist[e.To]; !seen || du+e.Weight < dv {
					dist[e.To] = du + e.Weight
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	return dist
}

// pathWeight sums the edge weights along path, failing if an edge is missing.
func pathWeight[N comparable](t testing.TB, g *graph.Graph[N, int], path []N) int {
	t.Helper()

	total := 0
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		require.True(t, ok, "path uses missing edge %v→%v", path[i-1], path[i])
		total += w
	}

	return total
}
