package router

import (
	"container/heap"

	"github.com/katalvlaran/routex/geo"
	"github.com/katalvlaran/routex/graph"
)

// turnState is the search state for FindRouteWithoutTurnAround: the
// current node id and the OSMID of the node the search arrived from.
//
// PredOSMID, not the predecessor's raw node id, is what must be compared
// against a candidate edge's target: a phantom node shares its OSMID
// with the canonical node it was split from, and a route that arrives at
// a canonical node through its phantom and then immediately backtracks
// to that same canonical node is physically a U-turn even though the two
// graph ids differ. PredOSMID == 0 for the start state, since a real
// OSMID is never zero.
type turnState struct {
	Cur       int64
	PredOSMID int64
}

// FindRouteWithoutTurnAround searches like FindRoute but forbids
// expanding any edge whose target shares its OSMID with the node the
// search just arrived from, at the cost of a larger (current,
// predecessor) search state. See doc.go.
func FindRouteWithoutTurnAround(g *graph.Graph, from, to int64, stepLimit int) (Result, error) {
	fromNode, ok := g.GetNode(from)
	if !ok {
		return Result{}, &InvalidReferenceError{NodeID: from}
	}
	toNode, ok := g.GetNode(to)
	if !ok {
		return Result{}, &InvalidReferenceError{NodeID: to}
	}

	if from == to {
		return Result{Nodes: []int64{fromNode.OSMID}}, nil
	}

	heuristic := func(id int64) float32 {
		n, ok := g.GetNode(id)
		if !ok {
			return 0
		}
		return geo.EarthDistance(n.Lat, n.Lon, toNode.Lat, toNode.Lon)
	}

	start := turnState{Cur: from, PredOSMID: 0}
	gScore := map[turnState]float32{start: 0}
	cameFrom := map[turnState]turnState{}

	pq := &priorityQueue[turnState]{}
	heap.Init(pq)
	heap.Push(pq, &pqItem[turnState]{key: start, g: 0, f: heuristic(from)})

	steps := 0
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*pqItem[turnState])
		if cur.f > gScore[cur.key]+heuristic(cur.key.Cur) {
			continue
		}

		steps++
		if steps > stepLimit {
			return Result{}, ErrStepLimitExceeded
		}
		if cur.key.Cur == to {
			path := reconstructTurnState(cameFrom, start, cur.key)
			return Result{Nodes: canonicalize(g, path), Cost: gScore[cur.key]}, nil
		}

		curNode, _ := g.GetNode(cur.key.Cur)

		for _, e := range g.GetEdges(cur.key.Cur) {
			targetNode, ok := g.GetNode(e.To)
			if ok && targetNode.OSMID == cur.key.PredOSMID {
				continue // forbid the immediate U-turn, by physical position
			}

			next := turnState{Cur: e.To, PredOSMID: curNode.OSMID}
			tentative := gScore[cur.key] + e.Cost
			if best, ok := gScore[next]; ok && tentative >= best {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = cur.key
			heap.Push(pq, &pqItem[turnState]{key: next, g: tentative, f: tentative + heuristic(e.To)})
		}
	}

	return Result{}, nil
}

func reconstructTurnState(cameFrom map[turnState]turnState, start, goal turnState) []int64 {
	path := []int64{goal.Cur}
	cur := goal
	for cur != start {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev.Cur)
		cur = prev
	}
	reverseInPlace(path)

	return path
}
