// Package restriction compiles OSM turn-restriction relations into graph
// mutations via node splitting, so that the router package's plain A*
// search sees restricted and mandatory turns as simply unreachable or
// exclusive edges, without needing an edge-labeled search.
//
// For a restriction whose via is a single node v, the compiler:
//
//  1. Finds the approach edge p->v: the edge of the from-way that ends at
//     v.
//  2. Allocates a phantom node v' with OSMID == v.OSMID (same physical
//     position, a new graph id) via graph.Graph.NextPhantomID.
//  3. Redirects the approach edge to p->v', leaving every other approach
//     to v untouched.
//  4. Installs v''s outgoing edges: for a no_* restriction, every
//     outgoing edge of v except the one leading onto the to-way; for an
//     only_* restriction, only the edge leading onto the to-way.
//
// A restriction whose via is a chain of ways is compiled by resolving
// the shared node between each consecutive way pair (the same endpoint-
// matching check used for a single via node) and allocating one phantom
// per intermediate hop, each wired to permit only the next hop in the
// chain; the fan-out step above is applied only at the final via node,
// where the restriction actually bears on the to-way.
package restriction

import "errors"

// Sentinel errors. Malformed input (an endpoint mismatch between
// consecutive via ways, or an approach/depart edge that cannot be
// located) is never fatal to the whole compilation: callers are expected
// to log the returned error at Warn and skip the one restriction, per
// the non-fatal-warning convention used across this module.
var (
	// ErrApproachNotFound indicates the from-way does not end at the via
	// node/chain start.
	ErrApproachNotFound = errors.New("restriction: approach edge not found")
	// ErrDepartNotFound indicates the to-way does not start at the via
	// node/chain end.
	ErrDepartNotFound = errors.New("restriction: depart edge not found")
	// ErrChainMismatch indicates consecutive via ways do not share an
	// endpoint.
	ErrChainMismatch = errors.New("restriction: via-way chain endpoints do not match")
	// ErrViaNodeUnknown indicates the via node is absent from the graph.
	ErrViaNodeUnknown = errors.New("restriction: via node not found in graph")
)
