package osmingest

import "github.com/katalvlaran/routex/profile"

// Format selects the decoder AddFromOSM uses for its input stream.
type Format int

const (
	// Unknown sniffs the leading bytes of the input to decide between
	// XML and PBF before delegating to the matching decoder.
	Unknown Format = iota
	XML
	XMLGz
	XMLBz2
	PBF
)

// BBox is a geographic bounding box in (min longitude, min latitude, max
// longitude, max latitude) order, matching the left/bottom/right/top convention of the
// reference implementation this option is distilled from.
type BBox struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// IsZero reports whether bb is the zero value, which disables bounding-
// box filtering entirely (every way is eligible regardless of position).
func (bb BBox) IsZero() bool {
	return bb == BBox{}
}

// Contains reports whether (lat, lon) falls within the box, inclusive of
// its edges.
func (bb BBox) Contains(lat, lon float64) bool {
	return lon >= bb.MinLon && lon <= bb.MaxLon && lat >= bb.MinLat && lat <= bb.MaxLat
}

// Options configures a single AddFromOSM call.
type Options struct {
	Profile profile.Profile
	Format  Format
	BBox    BBox
}
