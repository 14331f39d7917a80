// Package kdtree builds a static k-d tree over the canonical nodes of a
// graph.Graph for fast nearest-neighbor lookup.
//
// The tree is an immutable snapshot: Build copies node positions at
// construction time and does not track later mutations of the source
// graph. Rebuild with Build after any batch of node insertions or
// deletions you want reflected in Nearest queries.
//
// Construction alternates the split axis with tree depth (latitude at
// even depth, longitude at odd) and picks the median of the current
// slice at each level, in the style of a classic balanced k-d tree.
// Queries descend best-first, visiting the near child before the far
// child and pruning the far subtree whenever the axis-aligned distance
// to its splitting plane — converted from degrees to kilometers — cannot
// beat the best distance found so far.
package kdtree

import "errors"

// ErrEmptyTree indicates a query was issued against a tree with no nodes.
var ErrEmptyTree = errors.New("kdtree: tree has no nodes")

// kmPerDegreeLat is the approximate length of one degree of latitude, in
// kilometers, used to convert an axis-aligned coordinate gap into a
// pruning distance bound.
const kmPerDegreeLat = 111.32
