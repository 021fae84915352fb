package timeutil

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cecil-the-coder/kitutil/pkg/testutil"
)

func fixedClock(log *testutil.RecordingLogger) *Clock {
	now := time.Date(2024, 3, 10, 12, 30, 45, 0, time.UTC)
	if log == nil {
		return NewClock(func() time.Time { return now }, nil)
	}
	return NewClock(func() time.Time { return now }, log)
}

func TestClock_GetTime(t *testing.T) {
	tests := []struct {
		name       string
		offset     float64
		timeFormat string
		dateFormat string
		wantTime   string
		wantDate   string
	}{
		{name: "no offset", offset: 0, wantTime: "12:30:45", wantDate: "2024-03-10"},
		{name: "whole day", offset: 1, wantTime: "12:30:45", wantDate: "2024-03-11"},
		{name: "negative days", offset: -10, wantTime: "12:30:45", wantDate: "2024-02-29"},
		{name: "day and a half", offset: 1.5, wantTime: "00:30:45", wantDate: "2024-03-12"},
		{name: "negative fraction", offset: -0.25, wantTime: "06:30:45", wantDate: "2024-03-10"},
		{
			name:       "custom patterns",
			timeFormat: "%I:%M %p",
			dateFormat: "%d/%m/%Y",
			wantTime:   "12:30 PM",
			wantDate:   "10/03/2024",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTime, gotDate := fixedClock(nil).GetTime(tt.offset, tt.timeFormat, tt.dateFormat)
			assert.Equal(t, tt.wantTime, gotTime)
			assert.Equal(t, tt.wantDate, gotDate)
		})
	}
}

func TestClock_GetTime_Failures(t *testing.T) {
	for _, offset := range []float64{math.NaN(), math.Inf(1), 1e9, -800_000} {
		log := testutil.NewRecordingLogger()
		gotTime, gotDate := fixedClock(log).GetTime(offset, "", "")

		assert.Empty(t, gotTime)
		assert.Empty(t, gotDate)
		testutil.AssertLogged(t, log, "error", "Error when getting date/time")
	}
}

func TestClock_Shifted(t *testing.T) {
	c := fixedClock(nil)

	got, err := c.Shifted(2.25)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 12, 18, 30, 45, 0, time.UTC), got)

	_, err = c.Shifted(math.NaN())
	assert.True(t, errors.Is(err, ErrInvalidOffset))
}

func TestGetTime_SystemClock(t *testing.T) {
	gotTime, gotDate := GetTime(0, "", "")
	_, err := time.Parse("15:04:05", gotTime)
	assert.NoError(t, err)
	_, err = time.Parse("2006-01-02", gotDate)
	assert.NoError(t, err)
}
