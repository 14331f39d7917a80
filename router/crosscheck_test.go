package router_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routex/graph"
	"github.com/katalvlaran/routex/router"
)

// floydWarshall computes all-pairs shortest distances over a dense cost
// matrix in place, treating math.Inf(1) as "no edge". It is the
// brute-force cross-check for A*: any graph small enough to run this on
// should agree with router.FindRoute on every reachable pair.
func floydWarshall(dist [][]float64) {
	n := len(dist)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
}

// randomDAGLikeGraph builds a small directed graph over ids 0..n-1 from
// a fixed edge list with varied weights, all nodes collocated at the
// same coordinate so the haversine heuristic is uniformly zero and every
// edge cost trivially satisfies admissibility.
func randomDAGLikeGraph(n int) (*graph.Graph, [][]float64) {
	g := graph.New()
	for i := 0; i < n; i++ {
		g.SetNode(graph.Node{ID: int64(i), OSMID: int64(i)})
	}

	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				continue
			}
			dist[i][j] = math.Inf(1)
		}
	}

	// A fixed edge list with varied costs, not a full mesh, so the
	// shortest path isn't always the direct edge.
	type e struct {
		from, to int
		cost     float32
	}
	edges := []e{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 1}, {1, 3, 1},
		{2, 3, 5}, {3, 4, 3}, {1, 4, 9}, {2, 4, 8},
		{4, 5, 2}, {3, 5, 7}, {0, 5, 20},
	}
	for _, edge := range edges {
		if edge.to >= n || edge.from >= n {
			continue
		}
		g.SetEdge(int64(edge.from), graph.Edge{To: int64(edge.to), Cost: edge.cost})
		dist[edge.from][edge.to] = float64(edge.cost)
	}

	return g, dist
}

func TestFindRouteMatchesFloydWarshallCrossCheck(t *testing.T) {
	r := require.New(t)

	const n = 6
	g, dist := randomDAGLikeGraph(n)
	floydWarshall(dist)

	for from := 0; from < n; from++ {
		for to := 0; to < n; to++ {
			if from == to {
				continue
			}
			res, err := router.FindRoute(g, int64(from), int64(to), router.DefaultStepLimit)
			r.NoError(err)

			want := dist[from][to]
			if math.IsInf(want, 1) {
				r.Nil(res.Nodes, "from=%d to=%d should be unreachable", from, to)
				continue
			}
			r.NotNil(res.Nodes, "from=%d to=%d should be reachable", from, to)
			r.InDelta(want, float64(res.Cost), 1e-4, "from=%d to=%d", from, to)
		}
	}
}
