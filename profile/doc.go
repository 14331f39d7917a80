// Package profile defines the cost-profile model that turns an OSM way's
// tags into a routable edge: whether the mode of travel may use the way
// at all, what multiplier to apply to its haversine-derived base cost, and
// which direction(s) it may be traversed in.
//
// Evaluate implements the fixed four-stage algorithm used by every
// built-in profile:
//
//  1. Motorroad check — a way tagged motorroad=yes is rejected outright
//     for profiles that disallow motorroads (DisallowMotorroad).
//  2. Access-tag chain walk — the profile's Access tags are consulted in
//     order; the last one present on the way wins, and if its value is
//     in the deny set the way is rejected.
//  3. Penalty lookup — the profile's Penalties table is scanned in order
//     for the first entry whose tag key/value matches the way; its
//     multiplier becomes the edge cost multiplier. No match means the
//     way's type is not one this profile travels on at all.
//  4. One-way resolution — the generic oneway tag and the mode-specific
//     oneway:<mode> override (which always wins when present) are
//     resolved into a travel Direction. The foot profile special-cases
//     this: a plain oneway tag is ignored unless the way is one of the
//     footway-like highway types, and only oneway:foot is otherwise
//     honored.
//
// The seven built-in profiles (car, bus, bicycle, foot, railway, tram,
// subway) and their penalty tables are defined in registry.go, reproduced
// from the routing engine this package's data model was distilled from.
package profile

import "errors"

// ErrIneligible indicates Evaluate determined the way is not usable by
// the profile at all (motorroad rejection, denied access, or no
// matching penalty table entry). Evaluate does not return it — callers
// branch on Evaluate's returned bool; it exists so tests and logging
// call sites have a stable sentinel to format into messages.
var ErrIneligible = errors.New("profile: way not eligible for profile")
