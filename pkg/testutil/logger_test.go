package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordingLogger(t *testing.T) {
	log := NewRecordingLogger()

	log.Warn("first", "path", "a/b")
	log.WithField("source", "cfg").Info("second")
	log.Error("third")

	entries := log.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "warn", entries[0].Level)
	assert.Equal(t, "a/b", entries[0].Fields["path"])
	assert.Equal(t, "cfg", entries[1].Fields["source"])

	assert.True(t, log.Contains("error", "thi"))
	assert.False(t, log.Contains("debug", "first"))
	AssertLogged(t, log, "warn", "first")

	log.Reset()
	assert.Empty(t, log.Entries())
	AssertNothingLogged(t, log, "warn")
}

func TestFixturesAreFresh(t *testing.T) {
	a := DefaultSettings()
	a["name"] = "changed"
	assert.Equal(t, "assistant", DefaultSettings()["name"])
}
