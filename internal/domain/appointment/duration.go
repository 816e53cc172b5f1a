package appointment

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	DefaultDurationMinutes = 30
	DefaultDurationText    = "30 min"
)

var durationPattern = regexp.MustCompile(`(?i)(\d+)\s*(min|minute|minutes|hour|hours|hr|hrs)`)

// ParseDuration reads labels like "45 min" or "2 hours". Anything it
// cannot read counts as DefaultDurationMinutes.
func ParseDuration(text string) int {
	m := durationPattern.FindStringSubmatch(text)
	if m == nil {
		return DefaultDurationMinutes
	}

	n, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultDurationMinutes
	}

	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		return n * 60
	}
	return n
}
