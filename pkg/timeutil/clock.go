package timeutil

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/cecil-the-coder/kitutil/pkg/types"
)

const (
	// DefaultTimeFormat is used when no time pattern is given.
	DefaultTimeFormat = "%H:%M:%S"
	// DefaultDateFormat is used when no date pattern is given.
	DefaultDateFormat = "%Y-%m-%d"
)

// ErrInvalidOffset is returned when a day offset is not finite or moves the
// clock outside years 1 through 9999.
var ErrInvalidOffset = errors.New("invalid day offset")

// Clock reads the current time from an injectable source.
type Clock struct {
	now    func() time.Time
	logger types.Logger
}

// NewClock creates a Clock. A nil now uses time.Now and a nil logger
// discards errors.
func NewClock(now func() time.Time, logger types.Logger) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, logger: types.OrNop(logger)}
}

// Shifted returns the current time moved by offsetDays. The whole part of the
// offset moves the calendar date; the fractional part is applied as hours.
func (c *Clock) Shifted(offsetDays float64) (time.Time, error) {
	now := c.now()
	if offsetDays == 0 {
		return now, nil
	}
	if math.IsNaN(offsetDays) || math.IsInf(offsetDays, 0) {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidOffset, offsetDays)
	}

	days := math.Floor(offsetDays)
	// 3.7 million days covers the whole 1..9999 year range from any start.
	if math.Abs(days) > 3_700_000 {
		return time.Time{}, fmt.Errorf("%w: %v days", ErrInvalidOffset, offsetDays)
	}
	hours := (offsetDays - days) * 24

	shifted := now.AddDate(0, 0, int(days)).Add(time.Duration(hours * float64(time.Hour)))
	if y := shifted.Year(); y < 1 || y > 9999 {
		return time.Time{}, fmt.Errorf("%w: year %d out of range", ErrInvalidOffset, y)
	}
	return shifted, nil
}

// GetTime returns the current time shifted by offsetDays, formatted with
// timeFormat and dateFormat. Empty patterns fall back to DefaultTimeFormat
// and DefaultDateFormat. On any failure the error is logged and two empty
// strings are returned.
func (c *Clock) GetTime(offsetDays float64, timeFormat, dateFormat string) (string, string) {
	t, d, err := c.format(offsetDays, timeFormat, dateFormat)
	if err != nil {
		c.logger.Error(fmt.Sprintf("Error when getting date/time: %v", err))
		return "", ""
	}
	return t, d
}

func (c *Clock) format(offsetDays float64, timeFormat, dateFormat string) (string, string, error) {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	current, err := c.Shifted(offsetDays)
	if err != nil {
		return "", "", err
	}

	t, err := strftime.Format(timeFormat, current)
	if err != nil {
		return "", "", fmt.Errorf("time format %q: %w", timeFormat, err)
	}
	d, err := strftime.Format(dateFormat, current)
	if err != nil {
		return "", "", fmt.Errorf("date format %q: %w", dateFormat, err)
	}
	return t, d, nil
}

var systemClock = NewClock(nil, nil)

// GetTime formats the system time. Failures are not logged; use a Clock
// with a logger to see them.
func GetTime(offsetDays float64, timeFormat, dateFormat string) (string, string) {
	return systemClock.GetTime(offsetDays, timeFormat, dateFormat)
}
