// Package timeutil formats wall-clock times and durations for display.
//
// Time and date patterns use strftime syntax (%H:%M:%S, %Y-%m-%d, ...), the
// format users already write in settings files.
package timeutil
