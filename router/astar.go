package router

import (
	"container/heap"

	"github.com/katalvlaran/routex/geo"
	"github.com/katalvlaran/routex/graph"
)

// FindRoute searches for the cheapest path from `from` to `to` in g,
// using plain node-id state. See doc.go for the shared contract.
func FindRoute(g *graph.Graph, from, to int64, stepLimit int) (Result, error) {
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

	gScore := map[int64]float32{from: 0}
	cameFrom := map[int64]int64{}

	pq := &priorityQueue[int64]{}
	heap.Init(pq)
	heap.Push(pq, &pqItem[int64]{key: from, g: 0, f: heuristic(from)})

	steps := 0
	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*pqItem[int64])
		if cur.f > gScore[cur.key]+heuristic(cur.key) {
			continue // stale entry, superseded by a cheaper binding
		}

		steps++
		if steps > stepLimit {
			return Result{}, ErrStepLimitExceeded
		}
		if cur.key == to {
			path := reconstructSimple(cameFrom, from, to)
			return Result{Nodes: canonicalize(g, path), Cost: gScore[to]}, nil
		}

		for _, e := range g.GetEdges(cur.key) {
			tentative := gScore[cur.key] + e.Cost
			if best, ok := gScore[e.To]; ok && tentative >= best {
				continue
			}
			gScore[e.To] = tentative
			cameFrom[e.To] = cur.key
			heap.Push(pq, &pqItem[int64]{key: e.To, g: tentative, f: tentative + heuristic(e.To)})
		}
	}

	return Result{}, nil // not routable: empty result, not an error
}

func reconstructSimple(cameFrom map[int64]int64, from, to int64) []int64 {
	path := []int64{to}
	cur := to
	for cur != from {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	reverseInPlace(path)

	return path
}

func reverseInPlace(ids []int64) {
	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
}

// canonicalize replaces every phantom node id in ids with its OSMID, so
// callers see the OSM-level route rather than the internal phantom
// graph used for turn-restriction compilation.
func canonicalize(g *graph.Graph, ids []int64) []int64 {
	out := make([]int64, len(ids))
	for i, id := range ids {
		if n, ok := g.GetNode(id); ok {
			out[i] = n.OSMID
			continue
		}
		out[i] = id
	}

	return out
}
