package utils

import "time"

// Timestamp renders t the way every API response carries times: UTC, RFC3339.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
