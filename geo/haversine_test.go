package geo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routex/geo"
)

func TestEarthDistance_SamePointIsZero(t *testing.T) {
	r := require.New(t)

	r.Equal(float32(0), geo.EarthDistance(52.23024, 21.01062, 52.23024, 21.01062))
}

func TestEarthDistance_Symmetric(t *testing.T) {
	r := require.New(t)

	d1 := geo.EarthDistance(52.23024, 21.01062, 52.23852, 21.0446)
	d2 := geo.EarthDistance(52.23852, 21.0446, 52.23024, 21.01062)
	r.InDelta(d1, d2, 1e-6)
}

func TestEarthDistance_KnownValues(t *testing.T) {
	r := require.New(t)

	r.InDelta(2.49049, geo.EarthDistance(52.23024, 21.01062, 52.23852, 21.0446), 1e-3)
	r.InDelta(15.692483, geo.EarthDistance(52.23024, 21.01062, 52.16125, 21.21147), 1e-3)
}
