package profile

// Evaluate runs the four-stage algorithm described in doc.go against a
// way's tags and returns whether the profile may use the way, the cost
// multiplier to apply if so, and the resolved travel direction.
//
// tags uses OSM's plain string key/value convention (e.g. "highway" ->
// "residential"). warn may be nil. Evaluate does not call warn: an
// unrecognized access or highway value makes the way eligible or
// ineligible without any warning being reported.
func (p Profile) Evaluate(tags map[string]string, warn func(string)) (eligible bool, multiplier float32, dir Direction) {
	if p.DisallowMotorroad && tags["motorroad"] == "yes" {
		return false, 0, Bidirectional
	}

	if !p.checkAccess(tags, warn) {
		return false, 0, Bidirectional
	}

	mult, ok := p.lookupPenalty(tags)
	if !ok {
		return false, 0, Bidirectional
	}

	return true, mult, p.resolveOneway(tags)
}

func (p Profile) checkAccess(tags map[string]string, warn func(string)) bool {
	deny := p.DenyAccess
	if deny == nil {
		deny = DefaultDenyAccessValues
	}

	value := ""
	for _, tag := range p.Access {
		if v, ok := tags[tag]; ok && v != "" {
			value = v
		}
	}
	if value == "" {
		return true
	}

	for _, d := range deny {
		if value == d {
			return false
		}
	}

	return true
}

func (p Profile) lookupPenalty(tags map[string]string) (float32, bool) {
	for _, pen := range p.Penalties {
		if tags[pen.Key] == pen.Value {
			return pen.Multiplier, true
		}
	}

	return 0, false
}

func (p Profile) resolveOneway(tags map[string]string) Direction {
	if p.FootOnewaySemantics {
		if v, ok := tags["oneway:foot"]; ok {
			return directionFromValue(v)
		}
		if footLikeHighways[tags["highway"]] || footLikeHighways[tags["railway"]] {
			if v, ok := tags["oneway"]; ok {
				return directionFromValue(v)
			}
		}
		return Bidirectional
	}

	if v, ok := tags["oneway:"+p.Name]; ok {
		return directionFromValue(v)
	}
	if v, ok := tags["oneway"]; ok {
		return directionFromValue(v)
	}

	return Bidirectional
}

func directionFromValue(v string) Direction {
	switch v {
	case "yes", "true", "1":
		return ForwardOnly
	case "-1", "reverse":
		return ReverseOnly
	default:
		return Bidirectional
	}
}
