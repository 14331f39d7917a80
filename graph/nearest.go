package graph

import "github.com/katalvlaran/routex/geo"

// FindNearestNode performs a linear scan over canonical nodes (those with
// ID == OSMID) and returns the one closest to (lat, lon) by great-circle
// distance. Ties are broken by lower id. Returns the zero Node if the
// graph has no canonical nodes.
//
// This is the naive O(V) fallback; callers that repeat nearest-node
// lookups against an unchanging graph should build a kdtree.Tree instead.
//
// Complexity: O(V).
func (g *Graph) FindNearestNode(lat, lon float32) Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var best Node
	var bestDist float32
	found := false

	for _, id := range g.nodeIDs {
		n := g.nodes[id]
		if !n.IsCanonical() {
			continue
		}
		d := geo.EarthDistance(lat, lon, n.Lat, n.Lon)
		if !found || d < bestDist || (d == bestDist && n.ID < best.ID) {
			best, bestDist, found = n, d, true
		}
	}

	return best
}
