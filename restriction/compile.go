package restriction

import "github.com/katalvlaran/routex/graph"

// Compile applies a single restriction to g via node splitting. It
// returns a non-fatal error (one of the sentinels in doc.go) if the
// restriction's way references do not line up with each other or with
// the graph; callers should log such an error at Warn and continue with
// the next restriction, never abort the whole ingestion run.
func Compile(g *graph.Graph, r Restriction) error {
	viaNodes, err := chainNodes(r)
	if err != nil {
		return err
	}

	approach, ok := endpointNode(r.FromWay, viaNodes[0])
	if !ok {
		return ErrApproachNotFound
	}
	depart, ok := endpointNode(r.ToWay, viaNodes[len(viaNodes)-1])
	if !ok {
		return ErrDepartNotFound
	}

	// p is the node the redirected approach edge originates from; it is
	// updated at each hop so only the true approach edge into the first
	// via node is ever moved.
	p := approach
	for i, v := range viaNodes {
		original, ok := g.GetNode(v)
		if !ok {
			return ErrViaNodeUnknown
		}

		phantom := g.NextPhantomID()
		g.SetNode(graph.Node{ID: phantom, OSMID: original.OSMID, Lat: original.Lat, Lon: original.Lon})

		cost := g.GetEdge(p, v)
		g.DeleteEdge(p, v)
		g.SetEdge(p, graph.Edge{To: phantom, Cost: cost})

		last := i == len(viaNodes)-1
		if !last {
			// Intermediate hop: the phantom may only continue along the
			// chain toward the next via node.
			next := viaNodes[i+1]
			nextCost := g.GetEdge(v, next)
			g.SetEdge(phantom, graph.Edge{To: next, Cost: nextCost})
			p = phantom
			continue
		}

		// Final hop: fan out according to the restriction kind.
		for _, e := range g.GetEdges(v) {
			if r.Only {
				if e.To == depart {
					g.SetEdge(phantom, e)
				}
				continue
			}
			if e.To != depart {
				g.SetEdge(phantom, e)
			}
		}
	}

	return nil
}

// chainNodes resolves the ordered sequence of via nodes a restriction
// passes through: a single element for a via-node restriction, or, for a
// via-way chain, one element per via way (the node it shares with the
// previous way) plus a final element for the node shared with ToWay.
func chainNodes(r Restriction) ([]int64, error) {
	if len(r.ViaWays) == 0 {
		return []int64{r.ViaNode}, nil
	}

	nodes := make([]int64, 0, len(r.ViaWays)+1)
	prev := r.FromWay
	for _, via := range r.ViaWays {
		node, ok := sharedEndpoint(prev, via)
		if !ok {
			return nil, ErrChainMismatch
		}
		nodes = append(nodes, node)
		prev = via
	}
	last, ok := sharedEndpoint(prev, r.ToWay)
	if !ok {
		return nil, ErrChainMismatch
	}
	nodes = append(nodes, last)

	return nodes, nil
}
