package routex

import (
	"io"

	"github.com/katalvlaran/routex/geo"
	"github.com/katalvlaran/routex/graph"
	"github.com/katalvlaran/routex/kdtree"
	"github.com/katalvlaran/routex/osmingest"
	"github.com/katalvlaran/routex/profile"
	"github.com/katalvlaran/routex/router"
)

// Engine is a routing graph plus the nearest-neighbor index built over
// it. The zero Engine is not usable; construct one with New.
type Engine struct {
	g    *graph.Graph
	tree *kdtree.Tree
}

// New returns an Engine with an empty graph. Load data into it with
// AddFromOSM, then call Reindex before the first Nearest call.
func New() *Engine {
	return &Engine{g: graph.New()}
}

// Graph exposes the underlying graph store for callers that need direct
// node/edge access beyond what Engine's query methods offer.
func (e *Engine) Graph() *graph.Graph {
	return e.g
}

// AddFromOSM decodes an OSM extract from r and merges it into the
// engine's graph under the given profile and options. It does not
// rebuild the nearest-neighbor index; call Reindex afterward.
func (e *Engine) AddFromOSM(r io.Reader, opts osmingest.Options) error {
	return osmingest.AddFromOSM(e.g, r, opts)
}

// Reindex rebuilds the nearest-neighbor index over the engine's current
// set of canonical nodes. Call it once ingestion is complete and again
// after any subsequent AddFromOSM call.
func (e *Engine) Reindex() {
	e.tree = kdtree.Build(e.g)
}

// Nearest returns the canonical node closest to (lat, lon). Reindex must
// have been called at least once; otherwise Nearest returns the zero
// Node.
func (e *Engine) Nearest(lat, lon float32) graph.Node {
	return e.tree.Nearest(lat, lon)
}

// FindRoute searches for the cheapest path between two node ids, by
// their OSM id or internal graph id, allowing an immediate reversal at
// any node.
func (e *Engine) FindRoute(from, to int64, stepLimit int) (router.Result, error) {
	return router.FindRoute(e.g, from, to, stepLimit)
}

// FindRouteWithoutTurnAround searches like FindRoute but additionally
// forbids reversing direction at the node it just arrived at.
func (e *Engine) FindRouteWithoutTurnAround(from, to int64, stepLimit int) (router.Result, error) {
	return router.FindRouteWithoutTurnAround(e.g, from, to, stepLimit)
}

// Registry returns the built-in named routing profiles (car, bus,
// bicycle, foot, railway, tram, subway), keyed by Profile.Name.
func Registry() map[string]profile.Profile {
	return profile.Registry()
}

// EarthDistance is the haversine great-circle distance, in kilometers,
// between two WGS-84 points. It is the admissible heuristic the router
// package searches with, exposed here for callers that want to estimate
// a route's lower bound without running a search.
func EarthDistance(lat1, lon1, lat2, lon2 float32) float32 {
	return geo.EarthDistance(lat1, lon1, lat2, lon2)
}
