package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertLogged fails the test unless logger captured a message at level
// containing substr.
func AssertLogged(t *testing.T, logger *RecordingLogger, level, substr string) {
	t.Helper()
	if !logger.Contains(level, substr) {
		t.Errorf("expected a %s entry containing %q, got %+v", level, substr, logger.Entries())
	}
}

// AssertNothingLogged fails the test if logger captured anything at level.
func AssertNothingLogged(t *testing.T, logger *RecordingLogger, level string) {
	t.Helper()
	assert.Empty(t, logger.EntriesAt(level), "unexpected %s entries", level)
}

// AssertInRange fails the test unless low <= v <= high.
func AssertInRange(t *testing.T, v, low, high float64) {
	t.Helper()
	if v < low || v > high {
		t.Errorf("expected %v to be within [%v, %v]", v, low, high)
	}
}
