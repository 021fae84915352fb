package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Duration unit labels returned by FormatTime.
const (
	UnitSeconds = "secs"
	UnitMinutes = "mins"
	UnitHours   = "hrs"
	UnitDays    = "days"
)

// FormatTime expresses seconds in the coarsest unit that keeps the value
// readable. Under a minute the seconds are returned as given; larger values
// are converted and printed with two decimals.
func FormatTime(seconds float64) (string, string) {
	switch {
	case seconds < 60:
		return strconv.FormatFloat(seconds, 'f', -1, 64), UnitSeconds
	case seconds < 3600:
		return fmt.Sprintf("%.2f", seconds/60), UnitMinutes
	case seconds < 86400:
		return fmt.Sprintf("%.2f", seconds/3600), UnitHours
	default:
		return fmt.Sprintf("%.2f", seconds/86400), UnitDays
	}
}

// FormatTimeDifference describes the time between start and end, in either
// order, e.g. "42 seconds", "5 minutes", "2 hours" or "2 hours and 5 minutes".
func FormatTimeDifference(start, end time.Time) string {
	return formatDifference(end.Sub(start).Seconds())
}

// FormatSecondsDifference is FormatTimeDifference for Unix timestamps in
// seconds.
func FormatSecondsDifference(start, end float64) string {
	return formatDifference(end - start)
}

func formatDifference(diff float64) string {
	var total int64
	switch abs := math.Abs(diff); {
	case math.IsNaN(abs):
	case abs >= math.MaxInt64:
		total = math.MaxInt64
	default:
		total = int64(math.RoundToEven(abs))
	}
	minutes := total / 60
	hours := minutes / 60
	minutes %= 60

	switch {
	case total < 60:
		return fmt.Sprintf("%d seconds", total)
	case total < 3600:
		return fmt.Sprintf("%d minutes", minutes)
	case total%3600 == 0:
		return fmt.Sprintf("%d hours", hours)
	default:
		return fmt.Sprintf("%d hours and %d minutes", hours, minutes)
	}
}
