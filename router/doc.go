// Package router implements A* shortest-path search over a graph.Graph,
// using geo.EarthDistance as the admissible heuristic.
//
// Two variants are provided. FindRoute is the plain search: its state is
// simply the current node, so a path may perform an immediate U-turn at
// any node whose outgoing edges lead back where it came from — this is
// usually harmless, since turn restrictions are already compiled into
// the graph via phantom nodes by the restriction package, but a handful
// of scenarios (see the package tests) require forbidding the immediate
// reversal directly. FindRouteWithoutTurnAround carries the predecessor
// in its search state, (current, predecessor), and never expands the
// edge back to where it came from; it costs more memory and a larger
// search space in exchange.
//
// Both variants share the same lazy-decrease-key binary heap strategy:
// stale queue entries (ones superseded by a later, cheaper binding of
// the same state) are pushed as duplicates rather than updated in place,
// and discarded on pop by comparing their recorded f-score against the
// state's current best g-score plus heuristic.
//
// A search counts one step per accepted (non-stale) pop; exceeding
// stepLimit returns ErrStepLimitExceeded. Exhausting the open set before
// reaching the goal returns an empty Result with a nil error — this is
// not routable, not a failure. from == to returns a single-node Result
// of zero cost without touching the heap.
package router

import (
	"errors"
	"fmt"
)

// DefaultStepLimit is the step budget used when callers don't supply
// their own, matching the reference implementation's default.
const DefaultStepLimit = 1_000_000

// ErrStepLimitExceeded indicates the search accepted more pops than the
// caller's step budget allowed without reaching the goal.
var ErrStepLimitExceeded = errors.New("router: step limit exceeded")

// InvalidReferenceError indicates from or to does not name a node in the
// graph. When both are missing, from is reported.
type InvalidReferenceError struct {
	NodeID int64
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("router: invalid reference: node %d not found", e.NodeID)
}

// Result is a found route: the sequence of node ids from the query's
// `from` to `to` (phantom ids canonicalized back to their OSMID) and its
// total cost. A nil Nodes slice with a nil error means the goal is not
// reachable.
type Result struct {
	Nodes []int64
	Cost  float32
}
