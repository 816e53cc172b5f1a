package timezone

import (
	"time"
	_ "time/tzdata"
)

// DefaultTimezone is used when SALON_TIMEZONE is unset.
const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	return time.UTC
}

// Today returns t's calendar day in zone tz as YYYY-MM-DD.
func Today(t time.Time, tz string) string {
	return t.In(Location(tz)).Format("2006-01-02")
}
