package osmingest

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"

	"github.com/katalvlaran/routex/geo"
	"github.com/katalvlaran/routex/graph"
	"github.com/katalvlaran/routex/logging"
	"github.com/katalvlaran/routex/profile"
	"github.com/katalvlaran/routex/restriction"
)

const logTarget = "osm"

// nodeCoord is the subset of an OSM node AddFromOSM needs: its position.
type nodeCoord struct {
	lat, lon float64
}

// AddFromOSM parses the OSM primitive stream r and materializes it into
// g according to opts.Profile and opts.BBox. Any decode failure collapses
// to ErrLoadingFailed; everything else recoverable is logged and skipped.
func AddFromOSM(g *graph.Graph, r io.Reader, opts Options) error {
	raw, err := readAll(r)
	if err != nil {
		logging.Log(logging.Error, logTarget, fmt.Sprintf("reading input: %v", err))
		return ErrLoadingFailed
	}

	ctx := context.Background()

	coords, err := collectNodeCoords(ctx, opts.Format, raw)
	if err != nil {
		logging.Log(logging.Error, logTarget, fmt.Sprintf("node pass: %v", err))
		return ErrLoadingFailed
	}

	wayNodes := make(map[int64][]int64)
	pendingRestrictions := make([]*osm.Relation, 0)

	sc, err := openScanner(ctx, opts.Format, raw)
	if err != nil {
		logging.Log(logging.Error, logTarget, fmt.Sprintf("way pass: %v", err))
		return ErrLoadingFailed
	}
	defer sc.Close()

	for sc.Scan() {
		switch obj := sc.Object().(type) {
		case *osm.Way:
			nodes := wayNodeIDs(obj)
			wayNodes[int64(obj.ID)] = nodes
			processWay(g, opts, coords, int64(obj.ID), nodes, obj.Tags.Map())

		case *osm.Relation:
			if obj.Tags.Find("type") == "restriction" {
				pendingRestrictions = append(pendingRestrictions, obj)
			}
		}
	}
	if err := sc.Err(); err != nil {
		logging.Log(logging.Error, logTarget, fmt.Sprintf("way pass: %v", err))
		return ErrLoadingFailed
	}

	if !opts.Profile.DisableRestrictions {
		for _, rel := range pendingRestrictions {
			compileRestrictionRelation(g, opts.Profile, wayNodes, rel)
		}
	}

	return nil
}

func wayNodeIDs(w *osm.Way) []int64 {
	out := make([]int64, len(w.Nodes))
	for i, wn := range w.Nodes {
		out[i] = int64(wn.ID)
	}

	return out
}

// collectNodeCoords runs the first scanning pass, caching every node's
// position by id.
func collectNodeCoords(ctx context.Context, format Format, raw []byte) (map[int64]nodeCoord, error) {
	sc, err := openScanner(ctx, format, raw)
	if err != nil {
		return nil, err
	}
	defer sc.Close()

	coords := make(map[int64]nodeCoord)
	for sc.Scan() {
		if n, ok := sc.Object().(*osm.Node); ok {
			coords[int64(n.ID)] = nodeCoord{lat: n.Lat, lon: n.Lon}
		}
	}

	return coords, sc.Err()
}

// bboxEligible reports whether a way may be considered: the bbox is
// disabled (zero value), or both its endpoints are known and fall
// within it.
func bboxEligible(opts Options, coords map[int64]nodeCoord, nodes []int64) bool {
	if opts.BBox.IsZero() {
		return true
	}
	if len(nodes) == 0 {
		return false
	}

	for _, id := range []int64{nodes[0], nodes[len(nodes)-1]} {
		c, ok := coords[id]
		if !ok {
			return false
		}
		if !opts.BBox.Contains(c.lat, c.lon) {
			return false
		}
	}

	return true
}

func processWay(g *graph.Graph, opts Options, coords map[int64]nodeCoord, wayID int64, nodes []int64, tags map[string]string) {
	if len(nodes) < 2 {
		logging.Log(logging.Warn, logTarget, fmt.Sprintf("way %d has fewer than two nodes, skipping", wayID))
		return
	}

	eligible, multiplier, dir := opts.Profile.Evaluate(tags, func(msg string) {
		logging.Log(logging.Warn, logTarget, fmt.Sprintf("way %d: %s", wayID, msg))
	})
	if !eligible {
		return
	}

	if !bboxEligible(opts, coords, nodes) {
		return
	}

	for i := 0; i+1 < len(nodes); i++ {
		a, b := nodes[i], nodes[i+1]
		ca, okA := coords[a]
		cb, okB := coords[b]
		if !okA || !okB {
			logging.Log(logging.Warn, logTarget, fmt.Sprintf("way %d: unknown node reference", wayID))
			continue
		}

		ensureNode(g, a, ca)
		ensureNode(g, b, cb)

		cost := geo.EarthDistance(float32(ca.lat), float32(ca.lon), float32(cb.lat), float32(cb.lon)) * multiplier

		switch dir {
		case profile.ForwardOnly:
			g.SetEdge(a, graph.Edge{To: b, Cost: cost})
		case profile.ReverseOnly:
			g.SetEdge(b, graph.Edge{To: a, Cost: cost})
		default:
			g.SetEdge(a, graph.Edge{To: b, Cost: cost})
			g.SetEdge(b, graph.Edge{To: a, Cost: cost})
		}
	}
}

func ensureNode(g *graph.Graph, id int64, c nodeCoord) {
	if _, ok := g.GetNode(id); ok {
		return
	}
	g.SetNode(graph.Node{ID: id, OSMID: id, Lat: float32(c.lat), Lon: float32(c.lon)})
}

// compileRestrictionRelation resolves a restriction relation's from/via/to
// members into a restriction.Restriction and hands it to the compiler,
// logging and skipping on any structural problem.
func compileRestrictionRelation(g *graph.Graph, p profile.Profile, wayNodes map[int64][]int64, rel *osm.Relation) {
	kind := rel.Tags.Find("restriction")
	if p.RestrictionModeKey != "" {
		kind = rel.Tags.Find("restriction:" + p.RestrictionModeKey)
		if kind == "" {
			return
		}
	}
	if kind == "" {
		logging.Log(logging.Warn, logTarget, fmt.Sprintf("relation %d: missing restriction tag", rel.ID))
		return
	}
	only := len(kind) >= 4 && kind[:4] == "only"

	var fromWayID, toWayID int64
	var viaNodeID int64
	var viaWayIDs []int64

	for _, m := range rel.Members {
		switch m.Role {
		case "from":
			fromWayID = m.Ref
		case "to":
			toWayID = m.Ref
		case "via":
			if m.Type == osm.NodeType {
				viaNodeID = m.Ref
			} else if m.Type == osm.WayType {
				viaWayIDs = append(viaWayIDs, m.Ref)
			}
		}
	}

	fromNodes, ok := wayNodes[fromWayID]
	if !ok {
		logging.Log(logging.Warn, logTarget, fmt.Sprintf("relation %d: unknown from-way %d", rel.ID, fromWayID))
		return
	}
	toNodes, ok := wayNodes[toWayID]
	if !ok {
		logging.Log(logging.Warn, logTarget, fmt.Sprintf("relation %d: unknown to-way %d", rel.ID, toWayID))
		return
	}

	r := restriction.Restriction{
		FromWay: restriction.WayRef{WayID: fromWayID, Nodes: fromNodes},
		ViaNode: viaNodeID,
		ToWay:   restriction.WayRef{WayID: toWayID, Nodes: toNodes},
		Only:    only,
		Kind:    kind,
	}
	if len(viaWayIDs) > 0 {
		viaWays := make([]restriction.WayRef, 0, len(viaWayIDs))
		for _, id := range viaWayIDs {
			nodes, ok := wayNodes[id]
			if !ok {
				logging.Log(logging.Warn, logTarget, fmt.Sprintf("relation %d: unknown via-way %d", rel.ID, id))
				return
			}
			viaWays = append(viaWays, restriction.WayRef{WayID: id, Nodes: nodes})
		}
		r.ViaWays = viaWays
	}

	if err := restriction.Compile(g, r); err != nil {
		logging.Log(logging.Warn, logTarget, fmt.Sprintf("relation %d: %v", rel.ID, err))
	}
}
