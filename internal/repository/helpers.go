package repository

import "time"

// formatTimestamp converts a time to the RFC3339 UTC form stored in SQLite.
func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// nowUTC returns the current UTC time.
func nowUTC() time.Time {
	return time.Now().UTC()
}
