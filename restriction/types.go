package restriction

// WayRef is the ordered node sequence of one OSM way, as needed to locate
// the approach and departure edges at a via node.
type WayRef struct {
	WayID int64
	Nodes []int64
}

// Restriction is a single compiled-from-OSM turn restriction: travel
// arriving via FromWay at the node chain described by ViaNode/ViaWays is
// either forbidden (Only == false) or mandated (Only == true) to
// continue onto ToWay.
//
// The common case — a restriction relation with a single via node — sets
// ViaNode and leaves ViaWays empty. A restriction whose via is a
// sequence of ways sets ViaWays instead; ViaNode is then ignored.
type Restriction struct {
	FromWay WayRef
	ViaNode int64
	ViaWays []WayRef
	ToWay   WayRef

	// Only distinguishes only_* (mandatory) from no_* (forbidden)
	// restrictions.
	Only bool

	// Kind is the OSM restriction subtype (e.g. "no_left_turn",
	// "only_straight_on"), carried through for logging only.
	Kind string
}

// endpointNode returns the node of way adjacent to pivot, when pivot is
// one of way's two endpoints. ok is false if way has fewer than two
// nodes or pivot is not an endpoint.
func endpointNode(way WayRef, pivot int64) (neighbor int64, ok bool) {
	n := len(way.Nodes)
	if n < 2 {
		return 0, false
	}
	if way.Nodes[0] == pivot {
		return way.Nodes[1], true
	}
	if way.Nodes[n-1] == pivot {
		return way.Nodes[n-2], true
	}

	return 0, false
}

// sharedEndpoint returns the node shared between the end of a and the
// start of b's adjacency (whichever endpoints coincide), used to walk a
// multi-way via chain. ok is false if no endpoint is shared.
func sharedEndpoint(a, b WayRef) (node int64, ok bool) {
	if len(a.Nodes) == 0 || len(b.Nodes) == 0 {
		return 0, false
	}
	aEnds := [2]int64{a.Nodes[0], a.Nodes[len(a.Nodes)-1]}
	bEnds := [2]int64{b.Nodes[0], b.Nodes[len(b.Nodes)-1]}
	for _, x := range aEnds {
		for _, y := range bEnds {
			if x == y {
				return x, true
			}
		}
	}

	return 0, false
}
