package profile

// Direction is the resolved travel direction of a way under a profile.
type Direction int

const (
	// Bidirectional means both the forward and reverse edge should be
	// materialized.
	Bidirectional Direction = iota
	// ForwardOnly means only the node-order edge should be materialized.
	ForwardOnly
	// ReverseOnly means only the reversed edge should be materialized.
	ReverseOnly
)

// Penalty associates a tag key/value pair with a cost multiplier. The
// first Penalty in a Profile's table whose Key/Value matches the way's
// tags determines the multiplier; Multiplier must be >= 1.
type Penalty struct {
	Key        string
	Value      string
	Multiplier float32
}

// Profile is a named routing cost model: which ways a travel mode may
// use, at what relative cost, and in which direction.
type Profile struct {
	// Name identifies the profile and is used as the oneway:<mode> key
	// suffix. The restriction:<mode> suffix comes from
	// RestrictionModeKey, not from Name.
	Name string

	// Penalties is the ordered highway/railway-type -> multiplier table.
	// First match wins.
	Penalties []Penalty

	// Access is the ordered chain of access tags consulted to decide
	// eligibility; the last tag present on the way wins.
	Access []string

	// DenyAccess is the set of access-tag values that make a way
	// ineligible. Defaults to DefaultDenyAccessValues.
	DenyAccess []string

	// DisallowMotorroad rejects ways tagged motorroad=yes when true.
	DisallowMotorroad bool

	// DisableRestrictions makes the restriction compiler skip every
	// restriction relation for this profile.
	DisableRestrictions bool

	// FootOnewaySemantics enables the foot-profile special case: a plain
	// oneway tag is honored only on footway-like highways, and only
	// oneway:foot is otherwise consulted.
	FootOnewaySemantics bool

	// RestrictionModeKey, when non-empty, is the restriction tag suffix
	// (e.g. "foot") that must appear as restriction:<key> for a
	// restriction relation to apply to this profile. Empty means any
	// unqualified "restriction" relation applies.
	RestrictionModeKey string
}

// DefaultDenyAccessValues is the observed set of access-tag values that
// deny passage, reproduced from the reference implementation this model
// is distilled from. "customers" is included per that implementation's
// broader practice; profiles may override via Profile.DenyAccess.
var DefaultDenyAccessValues = []string{"no", "private", "agricultural", "forestry", "emergency", "customers"}

// footLikeHighways are the highway/railway values for which the foot
// profile honors a plain oneway tag in the absence of oneway:foot.
var footLikeHighways = map[string]bool{
	"footway":    true,
	"path":       true,
	"steps":      true,
	"pedestrian": true,
	"platform":   true,
}
