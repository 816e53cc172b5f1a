package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	cases := map[string]int{
		"45 min":        45,
		"2 hours":       120,
		"1 hour":        60,
		"1 hr":          60,
		"3 hrs":         180,
		"90 Minutes":    90,
		"15min":         15,
		"1 HOUR":        60,
		"garbage":       30,
		"":              30,
		"about an hour": 30,
	}

	for in, want := range cases {
		assert.Equal(t, want, ParseDuration(in), in)
	}
}
