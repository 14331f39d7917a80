package kdtree

import (
	"math"
	"sort"

	"github.com/katalvlaran/routex/geo"
	"github.com/katalvlaran/routex/graph"
)

// treeNode is one node of the balanced binary split tree. axis is the
// depth-derived split axis: 0 for latitude, 1 for longitude.
type treeNode struct {
	node        graph.Node
	left, right *treeNode
	axis        int
}

// Tree is an immutable k-d tree snapshot over a graph's canonical nodes.
type Tree struct {
	root  *treeNode
	count int
}

// Build constructs a Tree over every canonical node (ID == OSMID) in g.
// Phantom nodes introduced by turn-restriction compilation are excluded:
// they do not correspond to a distinct physical location a caller would
// search for.
//
// Complexity: O(n log^2 n) — each of the O(log n) levels re-sorts its
// slice by the level's axis to find the median, at O(m log m) per level.
func Build(g *graph.Graph) *Tree {
	_, it := g.GetNodes()
	var nodes []graph.Node
	for n := it.Next(); !n.IsZero(); n = it.Next() {
		if n.IsCanonical() {
			nodes = append(nodes, n)
		}
	}

	return &Tree{root: build(nodes, 0), count: len(nodes)}
}

func build(nodes []graph.Node, depth int) *treeNode {
	if len(nodes) == 0 {
		return nil
	}
	axis := depth % 2

	sort.Slice(nodes, func(i, j int) bool {
		if axis == 0 {
			return nodes[i].Lat < nodes[j].Lat
		}
		return nodes[i].Lon < nodes[j].Lon
	})

	mid := len(nodes) / 2
	n := &treeNode{node: nodes[mid], axis: axis}
	n.left = build(nodes[:mid], depth+1)
	n.right = build(nodes[mid+1:], depth+1)

	return n
}

// IsEmpty reports whether the tree has no nodes.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.count == 0
}

// Nearest returns the canonical node closest to (lat, lon) by great-circle
// distance. It returns the zero graph.Node if the tree is empty.
//
// Complexity: O(log n) expected, O(n) worst case for pathological input.
func (t *Tree) Nearest(lat, lon float32) graph.Node {
	if t.IsEmpty() {
		return graph.Node{}
	}

	best := t.root.node
	bestDist := geo.EarthDistance(lat, lon, best.Lat, best.Lon)
	search(t.root, lat, lon, &best, &bestDist)

	return best
}

func search(n *treeNode, lat, lon float32, best *graph.Node, bestDist *float32) {
	if n == nil {
		return
	}

	d := geo.EarthDistance(lat, lon, n.node.Lat, n.node.Lon)
	if d < *bestDist || (d == *bestDist && n.node.ID < best.ID) {
		*best = n.node
		*bestDist = d
	}

	var near, far *treeNode
	var axisGapDeg float64
	if n.axis == 0 {
		axisGapDeg = float64(lat - n.node.Lat)
	} else {
		axisGapDeg = float64(lon - n.node.Lon)
	}

	if axisGapDeg < 0 {
		near, far = n.left, n.right
	} else {
		near, far = n.right, n.left
	}

	search(near, lat, lon, best, bestDist)

	// Never prune if uncertain: convert the axis gap to a kilometer bound
	// and only skip the far subtree when it provably cannot improve on
	// the current best.
	boundKm := axisBoundKm(n.axis, axisGapDeg, lat, n.node.Lat)
	if boundKm < float64(*bestDist) {
		search(far, lat, lon, best, bestDist)
	}
}

// axisBoundKm converts an axis-aligned coordinate gap (in degrees) into a
// lower-bound distance in kilometers: for latitude splits this is exact
// (a degree of latitude is ~constant length); for longitude splits it is
// scaled by cos of the maximum-magnitude latitude of the two points being
// compared, since cos decreases toward the poles — using the larger
// |lat| yields the smaller, more conservative cosine, so the bound never
// overstates the true physical distance and so never causes an unsafe
// prune.
func axisBoundKm(axis int, gapDeg float64, queryLat, splitLat float32) float64 {
	gap := math.Abs(gapDeg)
	if axis == 0 {
		return kmPerDegreeLat * gap
	}
	maxAbsLat := math.Max(math.Abs(float64(queryLat)), math.Abs(float64(splitLat)))
	latRad := maxAbsLat * math.Pi / 180
	return kmPerDegreeLat * math.Cos(latRad) * gap
}
