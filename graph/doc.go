// Package graph is the in-memory routing graph store: a directed
// multigraph of Node values keyed by int64 id, with ordered adjacency
// lists of Edge values.
//
// A Node is canonical when its ID equals its OSMID; it is a phantom node
// (introduced by the restriction package's node-splitting compiler)
// otherwise. Graph itself does not distinguish the two beyond exposing
// OSMID on every Node — callers (kdtree, router) decide which nodes are
// eligible for which operation.
//
// Graph guards its maps with a sync.RWMutex, in the style of this
// module's earlier graph core: concurrent readers are safe on an
// unchanging graph, and a single mutator excludes all others. The lock
// does not protect against logical races across a GetEdges/Iterator view
// and a later mutation — those views are copies taken at call time and
// do not reflect later writes, exactly as documented per operation.
package graph

import "errors"

// Sentinel errors for graph package operations. Callers branch with
// errors.Is; messages are not part of the contract.
var (
	// ErrNodeNotFound indicates an operation referenced a node id absent
	// from the graph.
	ErrNodeNotFound = errors.New("graph: node not found")
)

// NoNode is the sentinel "no node" value: a Node with ID 0 signals the
// end of iteration (GetNodes) or a not-found result where the caller has
// chosen not to use the (Node, bool) form.
var NoNode = Node{}
