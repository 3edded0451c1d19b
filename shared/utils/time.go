package utils

import "time"

// TimeFormat defines the standard time format used across the application
const TimeFormat = "2006-01-02T15:04:05Z07:00"

// FormatTime formats a time.Time to the standard string format
func FormatTime(t time.Time) string {
	return t.Format(TimeFormat)
}

// GetCurrentTimeString returns the current time as a formatted string
func GetCurrentTimeString() string {
	return FormatTime(time.Now())
}
