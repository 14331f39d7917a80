package profile

// Built-in profile names.
const (
	Car     = "car"
	Bus     = "bus"
	Bicycle = "bicycle"
	Foot    = "foot"
	Railway = "railway"
	Tram    = "tram"
	Subway  = "subway"
)

// Registry returns the seven built-in profiles by name, reproduced
// verbatim (penalty tables and access chains) from the reference
// routing engine this data model is distilled from.
func Registry() map[string]Profile {
	profiles := []Profile{carProfile(), busProfile(), bicycleProfile(), footProfile(), railwayProfile(), tramProfile(), subwayProfile()}
	out := make(map[string]Profile, len(profiles))
	for _, p := range profiles {
		out[p.Name] = p
	}

	return out
}

func highwayPenalties(table map[string]float32) []Penalty {
	order := []string{
		"motorway", "motorway_link",
		"trunk", "trunk_link",
		"primary", "primary_link",
		"secondary", "secondary_link",
		"tertiary", "tertiary_link",
		"unclassified", "minor",
		"residential", "living_street",
		"cycleway", "bridleway", "footway", "path", "steps", "pedestrian", "platform",
		"track", "service",
	}
	var out []Penalty
	for _, highway := range order {
		if mult, ok := table[highway]; ok {
			out = append(out, Penalty{Key: "highway", Value: highway, Multiplier: mult})
		}
	}

	return out
}

func carProfile() Profile {
	return Profile{
		Name: Car,
		Penalties: highwayPenalties(map[string]float32{
			"motorway": 1.0, "motorway_link": 1.0,
			"trunk": 2.0, "trunk_link": 2.0,
			"primary": 5.0, "primary_link": 5.0,
			"secondary": 6.5, "secondary_link": 6.5,
			"tertiary": 10.0, "tertiary_link": 10.0,
			"unclassified": 10.0, "minor": 10.0,
			"residential": 15.0, "living_street": 20.0,
			"track": 20.0, "service": 20.0,
		}),
		Access:              []string{"access", "vehicle", "motor_vehicle", "motorcar"},
		DisallowMotorroad:   false,
		DisableRestrictions: false,
	}
}

func busProfile() Profile {
	return Profile{
		Name: Bus,
		Penalties: highwayPenalties(map[string]float32{
			"motorway": 1.0, "motorway_link": 1.0,
			"trunk": 1.0, "trunk_link": 1.0,
			"primary": 1.1, "primary_link": 1.1,
			"secondary": 1.15, "secondary_link": 1.15,
			"tertiary": 1.15, "tertiary_link": 1.15,
			"unclassified": 1.5, "minor": 1.5,
			"residential": 2.5, "living_street": 2.5,
			"track": 5.0, "service": 5.0,
		}),
		Access:              []string{"access", "vehicle", "motor_vehicle", "psv", "bus", "routing:ztm"},
		DisallowMotorroad:   false,
		DisableRestrictions: false,
	}
}

func bicycleProfile() Profile {
	return Profile{
		Name: Bicycle,
		Penalties: highwayPenalties(map[string]float32{
			"trunk": 50.0, "trunk_link": 50.0,
			"primary": 10.0, "primary_link": 10.0,
			"secondary": 3.0, "secondary_link": 3.0,
			"tertiary": 2.5, "tertiary_link": 2.5,
			"unclassified": 2.5, "minor": 2.5,
			"cycleway": 1.0, "residential": 1.0, "living_street": 1.5,
			"track": 2.0, "service": 2.0,
			"bridleway": 3.0, "footway": 3.0, "steps": 5.0, "path": 2.0,
		}),
		Access:              []string{"access", "vehicle", "bicycle"},
		DisallowMotorroad:   true,
		DisableRestrictions: false,
	}
}

func footProfile() Profile {
	penalties := highwayPenalties(map[string]float32{
		"trunk": 4.0, "trunk_link": 4.0,
		"primary": 2.0, "primary_link": 2.0,
		"secondary": 1.3, "secondary_link": 1.3,
		"tertiary": 1.2, "tertiary_link": 1.2,
		"unclassified": 1.2, "minor": 1.2,
		"residential": 1.2, "living_street": 1.2,
		"track": 1.2, "service": 1.2, "bridleway": 1.2,
		"footway": 1.05, "path": 1.05, "steps": 1.15, "pedestrian": 1.0,
		"platform": 1.1,
	})
	// railway=platform and public_transport=platform are additional
	// matches for the same 1.1 multiplier, alongside highway=platform.
	penalties = append(penalties,
		Penalty{Key: "railway", Value: "platform", Multiplier: 1.1},
		Penalty{Key: "public_transport", Value: "platform", Multiplier: 1.1},
	)

	return Profile{
		Name:                Foot,
		Penalties:           penalties,
		Access:              []string{"access", "foot"},
		DisallowMotorroad:   true,
		DisableRestrictions: false,
		FootOnewaySemantics: true,
		RestrictionModeKey:  "foot",
	}
}

func railwayPenalties(table map[string]float32) []Penalty {
	order := []string{"rail", "light_rail", "subway", "narrow_gauge", "tram"}
	var out []Penalty
	for _, v := range order {
		if mult, ok := table[v]; ok {
			out = append(out, Penalty{Key: "railway", Value: v, Multiplier: mult})
		}
	}

	return out
}

func railwayProfile() Profile {
	return Profile{
		Name:                Railway,
		Penalties:           railwayPenalties(map[string]float32{"rail": 1.0, "light_rail": 1.0, "subway": 1.0, "narrow_gauge": 1.0}),
		Access:              []string{"access", "train"},
		DisallowMotorroad:   false,
		DisableRestrictions: false,
	}
}

func tramProfile() Profile {
	return Profile{
		Name:                Tram,
		Penalties:           railwayPenalties(map[string]float32{"tram": 1.0, "light_rail": 1.0}),
		Access:              []string{"access", "tram"},
		DisallowMotorroad:   false,
		DisableRestrictions: false,
	}
}

func subwayProfile() Profile {
	return Profile{
		Name:                Subway,
		Penalties:           railwayPenalties(map[string]float32{"subway": 1.0}),
		Access:              []string{"access", "subway"},
		DisallowMotorroad:   false,
		DisableRestrictions: false,
	}
}
