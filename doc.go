// Package routex is an in-memory OpenStreetMap routing engine: ingest an
// OSM extract, compile turn restrictions into the graph, and run A*
// shortest-path queries over it, mode by mode (car, bus, bicycle, foot,
// railway, tram, subway).
//
// Under the hood it is organized as:
//
//	geo/         — haversine great-circle distance, the A* heuristic
//	graph/       — the routing graph store: nodes, edges, phantom ids
//	kdtree/      — nearest-neighbor lookup over graph nodes
//	profile/     — per-mode tag evaluation: eligibility, penalty, direction
//	osmingest/   — OSM node/way/relation decoding into a graph
//	restriction/ — turn-restriction compilation via node splitting
//	router/      — A* search, with and without U-turn suppression
//	logging/     — the engine's leveled log sink
//
// Engine ties these together behind a single entry point; most callers
// only need New, AddFromOSM, FindRoute and Nearest.
//
//	go get github.com/katalvlaran/routex
package routex
