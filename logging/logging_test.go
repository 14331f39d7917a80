package logging_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/routex/logging"
)

func TestSetSinkRoutesRecords(t *testing.T) {
	r := require.New(t)

	type record struct {
		level   logging.Level
		target  string
		message string
	}
	var got []record
	logging.SetSink(func(level logging.Level, target, message string) {
		got = append(got, record{level, target, message})
	})
	t.Cleanup(func() { logging.SetSink(nil) })

	logging.Log(logging.Warn, "osm", "unknown node ref")

	r.Len(got, 1)
	r.Equal(logging.Warn, got[0].level)
	r.Equal("osm", got[0].target)
	r.Equal("unknown node ref", got[0].message)
}

func TestDiscardIsDefaultAndSafe(t *testing.T) {
	logging.SetSink(nil)
	logging.Log(logging.Error, "", "should not panic")
}

func TestLevelString(t *testing.T) {
	r := require.New(t)
	r.Equal("warn", logging.Warn.String())
	r.Equal("unknown", logging.Level(99).String())
}
