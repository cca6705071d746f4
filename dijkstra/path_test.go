package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/dijkstra"
	"github.com/katalvlaran/shortpath/graph"
)

func TestFindPath_Scenarios(t *testing.T) {
	fx := loadFixtures(t)

	for _, sc := range fx.Paths {
		t.Run(sc.Name, func(t *testing.T) {
			g := fixtureGraph(t, fx, sc.Graph)

			path, err := dijkstra.FindPath(g, sc.Source, sc.Target)
			withCost, cost, errWithCost := dijkstra.FindPathWithCost(g, sc.Source, sc.Target)

			if sc.Unreachable {
				require.ErrorIs(t, err, dijkstra.ErrUnreachable)
				require.ErrorIs(t, errWithCost, dijkstra.ErrUnreachable)
				assert.Nil(t, path)
				assert.Nil(t, withCost)
				assert.Zero(t, cost)
				return
			}

			require.NoError(t, err)
			require.NoError(t, errWithCost)
			assert.Equal(t, sc.Path, path)
			assert.Equal(t, sc.Path, withCost)
			assert.Equal(t, sc.Cost, cost)
			assert.Equal(t, cost, pathWeight(t, g, path))
		})
	}
}

func TestFindPath_SourceAbsentFromGraph(t *testing.T) {
	g := weightedGraph()

	// A self-query is never "unreachable", even for an unknown node.
	path, cost, err := dijkstra.FindPathWithCost(g, "z", "z")
	require.NoError(t, err)
	assert.Equal(t, []string{"z"}, path)
	assert.Zero(t, cost)

	_, err = dijkstra.FindPath(g, "z", "a")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestFindPath_UnreachableMessage(t *testing.T) {
	_, err := dijkstra.FindPath(weightedGraph(), "a", "g")
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
	assert.Contains(t, err.Error(), "a→g")
}

func TestFindPath_NilGraph(t *testing.T) {
	_, err := dijkstra.FindPath[string, int](nil, "a", "b")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, _, err = dijkstra.FindPathWithCost[string, int](nil, "a", "a")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestFindPath_FloatWeights(t *testing.T) {
	g := graph.FromMap(map[string]map[string]float64{
		"home": {"park": 0.5, "shop": 2.25},
		"park": {"shop": 0.75},
	})

	path, cost, err := dijkstra.FindPathWithCost(g, "home", "shop")
	require.NoError(t, err)
	assert.Equal(t, []string{"home", "park", "shop"}, path)
	assert.InDelta(t, 1.25, cost, 1e-12)
}

func TestFindPath_WithOptions(t *testing.T) {
	g := weightedGraph()

	// Capping the cost below 4 leaves c out of reach.
	_, err := dijkstra.FindPath(g, "a", "c", dijkstra.WithMaxCost[string](3))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)

	// Walling off the heavy first hop forces the longer chain of light edges.
	walled := graph.FromMap(map[string]map[string]int{
		"a": {"x": 8, "y": 3},
		"x": {"t": 0},
		"y": {"z": 3},
		"z": {"t": 3},
	})
	path, cost, err := dijkstra.FindPathWithCost(walled, "a", "t")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "t"}, path)
	assert.Equal(t, 8, cost)

	path, cost, err = dijkstra.FindPathWithCost(walled, "a", "t", dijkstra.WithImpassable[string](5))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "y", "z", "t"}, path)
	assert.Equal(t, 9, cost)

	// The threshold is inclusive: an edge weighing exactly 5 is a wall too.
	blocked := graph.FromMap(map[string]map[string]int{
		"a": {"b": 30, "d": 1},
		"d": {"b": 5},
	})
	_, err = dijkstra.FindPath(blocked, "a", "b", dijkstra.WithImpassable[string](5))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

// TestFindPath_MatchesOracle checks minimality and cost consistency against
// Bellman–Ford on seeded random graphs.
func TestFindPath_MatchesOracle(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := randomGraph(seed, 30, 0.12, 9)

		for _, s := range []int{0, 7, 19} {
			want := bellmanFord(g, s)
			res := dijkstra.SingleSource(g, s)
			require.Equal(t, want, res.Costs(), "seed %d source %d", seed, s)

			for target := 0; target < 30; target++ {
				path, cost, err := dijkstra.FindPathWithCost(g, s, target)
				if _, ok := want[target]; !ok {
					require.ErrorIs(t, err, dijkstra.ErrUnreachable)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, s, path[0])
				require.Equal(t, target, path[len(path)-1])
				require.Equal(t, want[target], cost)
				require.Equal(t, cost, pathWeight(t, g, path))

				// FindPath and the predecessor walk agree with FindPathWithCost.
				plain, err := dijkstra.FindPath(g, s, target)
				require.NoError(t, err)
				require.Equal(t, path, plain)

				walked, _, err := res.PathTo(target)
				require.NoError(t, err)
				require.Equal(t, path, walked)
			}
		}
	}
}

func TestFindPath_Deterministic(t *testing.T) {
	fx := loadFixtures(t)
	g := fixtureGraph(t, fx, "grid")

	first, err := dijkstra.FindPath(g, "a", "i")
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		// Rebuild from the map each time so map iteration order varies.
		again, err := dijkstra.FindPath(fixtureGraph(t, fx, "grid"), "a", "i")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
