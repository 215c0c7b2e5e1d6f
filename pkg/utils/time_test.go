package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimestamp(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	ts := time.Date(2024, 3, 1, 13, 30, 15, 999, berlin)

	assert.Equal(t, "2024-03-01T12:30:15Z", Timestamp(ts))
	assert.Equal(t, "0001-01-01T00:00:00Z", Timestamp(time.Time{}))
}
