package restriction_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/routex/graph"
	"github.com/katalvlaran/routex/restriction"
)

type CompileSuite struct {
	suite.Suite
	g *graph.Graph
}

// SetupTest creates p -> v -> {a, b, c} so fan-out behavior is easy to
// assert on.
func (s *CompileSuite) SetupTest() {
	s.g = graph.New()
	for _, id := range []int64{1, 2, 3, 4, 5} {
		s.g.SetNode(graph.Node{ID: id, OSMID: id})
	}
	s.g.SetEdge(1, graph.Edge{To: 2, Cost: 10}) // p -> v
	s.g.SetEdge(2, graph.Edge{To: 3, Cost: 5})  // v -> a
	s.g.SetEdge(2, graph.Edge{To: 4, Cost: 6})  // v -> b
	s.g.SetEdge(2, graph.Edge{To: 5, Cost: 7})  // v -> c
}

func (s *CompileSuite) wayFrom(from, via int64) restriction.WayRef {
	return restriction.WayRef{WayID: 100, Nodes: []int64{from, via}}
}

func (s *CompileSuite) wayTo(via, to int64) restriction.WayRef {
	return restriction.WayRef{WayID: 200, Nodes: []int64{via, to}}
}

func (s *CompileSuite) TestNoTurnRedirectsApproachEdgeToPhantom() {
	r := require.New(s.T())

	err := restriction.Compile(s.g, restriction.Restriction{
		FromWay: s.wayFrom(1, 2),
		ViaNode: 2,
		ToWay:   s.wayTo(2, 4),
		Only:    false,
	})
	r.NoError(err)

	// approach edge redirected to a phantom
	r.True(math.IsInf(float64(s.g.GetEdge(1, 2)), 1))

	phantomID := s.findPhantom()
	r.NotZero(phantomID)
	r.Equal(float32(10), s.g.GetEdge(1, phantomID), "approach edge cost carries over to the phantom")
}

func (s *CompileSuite) TestNoTurnFanOutExcludesRestrictedTarget() {
	r := require.New(s.T())

	err := restriction.Compile(s.g, restriction.Restriction{
		FromWay: s.wayFrom(1, 2),
		ViaNode: 2,
		ToWay:   s.wayTo(2, 4),
		Only:    false,
	})
	r.NoError(err)

	phantomID := s.findPhantom()
	edges := s.g.GetEdges(phantomID)
	r.Len(edges, 2, "only the non-restricted edges (to 3 and 5) are copied")
	for _, e := range edges {
		r.NotEqual(int64(4), e.To)
	}
}

func (s *CompileSuite) TestOnlyTurnFanOutKeepsOnlyMandatedTarget() {
	r := require.New(s.T())

	err := restriction.Compile(s.g, restriction.Restriction{
		FromWay: s.wayFrom(1, 2),
		ViaNode: 2,
		ToWay:   s.wayTo(2, 4),
		Only:    true,
	})
	r.NoError(err)

	phantomID := s.findPhantom()
	edges := s.g.GetEdges(phantomID)
	r.Len(edges, 1)
	r.Equal(int64(4), edges[0].To)
}

func (s *CompileSuite) findPhantom() int64 {
	_, it := s.g.GetNodes()
	for n := it.Next(); !n.IsZero(); n = it.Next() {
		if n.OSMID == 2 && n.ID != 2 {
			return n.ID
		}
	}
	return 0
}

// TestViaWayChainSplitsAtBothJunctions covers a single via-way
// restriction: FromWay(1,2) -> ViaWay(2,6) -> ToWay(6,4). The via-node
// chain must include both the entry junction (2, shared by FromWay and
// ViaWay) and the exit junction (6, shared by ViaWay and ToWay) so the
// phantom fan-out at the exit junction can find depart node 4 on ToWay.
func (s *CompileSuite) TestViaWayChainSplitsAtBothJunctions() {
	r := require.New(s.T())

	g := graph.New()
	for _, id := range []int64{1, 2, 4, 6, 7} {
		g.SetNode(graph.Node{ID: id, OSMID: id})
	}
	g.SetEdge(1, graph.Edge{To: 2, Cost: 10})
	g.SetEdge(2, graph.Edge{To: 6, Cost: 5})
	g.SetEdge(6, graph.Edge{To: 4, Cost: 5})
	g.SetEdge(6, graph.Edge{To: 7, Cost: 5})

	err := restriction.Compile(g, restriction.Restriction{
		FromWay: restriction.WayRef{WayID: 1, Nodes: []int64{1, 2}},
		ViaWays: []restriction.WayRef{{WayID: 2, Nodes: []int64{2, 6}}},
		ToWay:   restriction.WayRef{WayID: 3, Nodes: []int64{6, 4}},
		Only:    false,
	})
	r.NoError(err)

	_, it := g.GetNodes()
	var phantomAt2, phantomAt6 int64
	for n := it.Next(); !n.IsZero(); n = it.Next() {
		switch {
		case n.OSMID == 2 && n.ID != 2:
			phantomAt2 = n.ID
		case n.OSMID == 6 && n.ID != 6:
			phantomAt6 = n.ID
		}
	}
	r.NotZero(phantomAt2, "entry junction (2) must be split")
	r.NotZero(phantomAt6, "exit junction (6) must be split")

	r.Equal(float32(5), g.GetEdge(phantomAt2, phantomAt6), "chain continues from entry to exit phantom")

	edges := g.GetEdges(phantomAt6)
	r.Len(edges, 1, "only the non-restricted edge (to 7) survives the fan-out at the exit junction")
	r.Equal(int64(7), edges[0].To)
}

func (s *CompileSuite) TestChainMismatchIsReported() {
	r := require.New(s.T())

	err := restriction.Compile(s.g, restriction.Restriction{
		FromWay: restriction.WayRef{WayID: 1, Nodes: []int64{1, 2}},
		ViaWays: []restriction.WayRef{{WayID: 2, Nodes: []int64{9, 10}}},
		ToWay:   restriction.WayRef{WayID: 3, Nodes: []int64{10, 4}},
		Only:    false,
	})
	r.ErrorIs(err, restriction.ErrChainMismatch)
}

func TestCompileSuite(t *testing.T) {
	suite.Run(t, new(CompileSuite))
}
