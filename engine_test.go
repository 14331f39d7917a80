package routex_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routex"
	"github.com/katalvlaran/routex/osmingest"
	"github.com/katalvlaran/routex/profile"
	"github.com/katalvlaran/routex/router"
)

const twoWayFixture = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="50.4501" lon="30.5234"/>
  <node id="2" lat="50.4510" lon="30.5250"/>
  <node id="3" lat="50.4520" lon="30.5270"/>
  <way id="10">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`

func TestEngineIngestAndRoute(t *testing.T) {
	r := require.New(t)

	e := routex.New()
	car := routex.Registry()["car"]
	err := e.AddFromOSM(strings.NewReader(twoWayFixture), osmingest.Options{Profile: car, Format: osmingest.XML})
	r.NoError(err)
	e.Reindex()

	res, err := e.FindRoute(1, 3, router.DefaultStepLimit)
	r.NoError(err)
	r.Equal([]int64{1, 2, 3}, res.Nodes)

	nearest := e.Nearest(50.4502, 30.5236)
	r.Equal(int64(1), nearest.ID)
}

func TestRegistryHasCarProfile(t *testing.T) {
	r := require.New(t)
	reg := routex.Registry()
	car, ok := reg["car"]
	r.True(ok)
	r.Equal("car", car.Name)
	r.IsType(profile.Profile{}, car)
}
