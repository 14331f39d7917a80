// Package osmingest consumes a stream of OSM primitives and populates a
// graph.Graph: nodes, profile-evaluated directional edges, and
// turn-restriction relations compiled via the restriction package.
//
// The only public entry point is AddFromOSM. It treats its io.Reader as
// an already-decoded OSM primitive stream in one of Format's encodings
// (XML, gzipped XML, bzip2 XML, or PBF) — unwrapping an arbitrary
// container format or auto-detecting it from a file extension is outside
// this library's job; callers who have a .osm.pbf or .osm.bz2 file on
// disk open it and hand this package the decoded byte stream (or,
// for the compressed XML variants, the package will transparently wrap a
// compress/gzip or compress/bzip2 reader itself since that is cheap and
// keeps the common case — "I have a file" — a single call).
//
// Ingestion always happens in two scanning passes over a buffered copy
// of the input: the first pass collects every node's coordinates (way
// materialization and bbox filtering both need to look up a node's
// position by id, and OSM ways only reference node ids), and the second
// materializes ways into edges and stages restriction relations, which
// are compiled last, once every way's node sequence is known.
//
// AddFromOSM's only observable failure is ErrLoadingFailed; everything
// recoverable (unknown node reference, a too-short way, a malformed
// restriction) is reported through the logging package at Warn and the
// offending element is skipped. A way whose tags the profile rejects,
// including one with an unrecognized tag value, is skipped without a
// warning.
package osmingest

import "errors"

// ErrLoadingFailed is the single sentinel error AddFromOSM can return.
// Detail is always logged at logging.Error/logging.Warn before this
// sentinel reaches the caller.
var ErrLoadingFailed = errors.New("osmingest: loading failed")
