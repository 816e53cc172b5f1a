package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Location(""))
	assert.Equal(t, time.UTC, Location("Nowhere/Land"))
	assert.False(t, IsValid("Nowhere/Land"))
	assert.True(t, IsValid("UTC"))
	assert.True(t, IsValid(DefaultTimezone))
}

func TestTodayUsesSalonZone(t *testing.T) {
	instant := time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-06-01", Today(instant, "UTC"))
	assert.Equal(t, "2024-06-02", Today(instant, "Asia/Tokyo"))
}
