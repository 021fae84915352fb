package timeutil

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds   float64
		wantValue string
		wantUnit  string
	}{
		{seconds: 30, wantValue: "30", wantUnit: UnitSeconds},
		{seconds: 59.5, wantValue: "59.5", wantUnit: UnitSeconds},
		{seconds: 60, wantValue: "1.00", wantUnit: UnitMinutes},
		{seconds: 125, wantValue: "2.08", wantUnit: UnitMinutes},
		{seconds: 7200, wantValue: "2.00", wantUnit: UnitHours},
		{seconds: 90000, wantValue: "1.04", wantUnit: UnitDays},
	}

	for _, tt := range tests {
		value, unit := FormatTime(tt.seconds)
		assert.Equal(t, tt.wantValue, value, "seconds=%v", tt.seconds)
		assert.Equal(t, tt.wantUnit, unit, "seconds=%v", tt.seconds)
	}
}

func TestFormatSecondsDifference(t *testing.T) {
	tests := []struct {
		name     string
		start    float64
		end      float64
		expected string
	}{
		{name: "zero", start: 100, end: 100, expected: "0 seconds"},
		{name: "seconds", start: 0, end: 42, expected: "42 seconds"},
		{name: "half rounds to even", start: 0, end: 0.5, expected: "0 seconds"},
		{name: "rounds into minutes", start: 0, end: 59.5, expected: "1 minutes"},
		{name: "minutes", start: 0, end: 300, expected: "5 minutes"},
		{name: "reversed order", start: 300, end: 0, expected: "5 minutes"},
		{name: "exact hours", start: 0, end: 7200, expected: "2 hours"},
		{name: "one hour", start: 0, end: 3600, expected: "1 hours"},
		{name: "one second past the hour", start: 0, end: 3601, expected: "1 hours and 0 minutes"},
		{name: "just under a minute past the hour", start: 0, end: 3659, expected: "1 hours and 0 minutes"},
		{name: "hours with seconds only", start: 0, end: 7230, expected: "2 hours and 0 minutes"},
		{name: "hours and minutes", start: 0, end: 7500, expected: "2 hours and 5 minutes"},
		{name: "over a day", start: 0, end: 90060, expected: "25 hours and 1 minutes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSecondsDifference(tt.start, tt.end))
		})
	}
}

func TestFormatSecondsDifference_Extremes(t *testing.T) {
	assert.Equal(t, "2562047788015215 hours and 30 minutes", FormatSecondsDifference(0, 1e300))
	assert.Equal(t, "2562047788015215 hours and 30 minutes", FormatSecondsDifference(math.Inf(1), 0))
	assert.Equal(t, "0 seconds", FormatSecondsDifference(0, math.NaN()))
}

func TestFormatTimeDifference(t *testing.T) {
	start := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, "1 hours and 30 minutes", FormatTimeDifference(start, start.Add(90*time.Minute)))
	assert.Equal(t, "1 hours and 30 minutes", FormatTimeDifference(start.Add(90*time.Minute), start))
	assert.Equal(t, "10 seconds", FormatTimeDifference(start, start.Add(10*time.Second)))
}
