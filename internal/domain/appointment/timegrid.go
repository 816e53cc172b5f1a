package appointment

import (
	"fmt"
	"strings"
	"time"
)

// SlotMinutes is the length of one bookable slot.
const SlotMinutes = 15

const clockLayout = "3:04 PM"

const (
	DefaultOpensAt  = "9:00 AM"
	DefaultClosesAt = "5:00 PM"
)

// ===============================
// Time Grid
// ===============================

// TimeGrid is the ordered set of slot labels a booking may start at.
// Both bounds are inclusive.
type TimeGrid struct {
	slots   []string
	minutes map[string]int
}

func NewTimeGrid(opensAt, closesAt string) (*TimeGrid, error) {
	open, err := ParseClock(opensAt)
	if err != nil {
		return nil, fmt.Errorf("opening time: %w", err)
	}
	closeAt, err := ParseClock(closesAt)
	if err != nil {
		return nil, fmt.Errorf("closing time: %w", err)
	}
	if closeAt < open {
		return nil, fmt.Errorf("closing time %q is before opening time %q", closesAt, opensAt)
	}
	if (closeAt-open)%SlotMinutes != 0 {
		return nil, fmt.Errorf("business day %s-%s is not a multiple of %d minutes", opensAt, closesAt, SlotMinutes)
	}

	g := &TimeGrid{minutes: make(map[string]int)}
	for m := open; m <= closeAt; m += SlotMinutes {
		label := FormatClock(m)
		g.slots = append(g.slots, label)
		g.minutes[label] = m
	}
	return g, nil
}

// DefaultTimeGrid is the 9:00 AM to 5:00 PM business day.
func DefaultTimeGrid() *TimeGrid {
	g, err := NewTimeGrid(DefaultOpensAt, DefaultClosesAt)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *TimeGrid) Slots() []string {
	out := make([]string, len(g.slots))
	copy(out, g.slots)
	return out
}

func (g *TimeGrid) IsValidSlot(label string) bool {
	_, ok := g.minutes[label]
	return ok
}

// labelAt returns the slot starting at minute m, if the grid has one.
func (g *TimeGrid) labelAt(m int) (string, bool) {
	if m < 0 || m >= 24*60 {
		return "", false
	}
	label := FormatClock(m)
	if _, ok := g.minutes[label]; !ok {
		return "", false
	}
	return label, true
}

// ===============================
// Clock labels
// ===============================

// ParseClock converts "h:mm AM|PM" into minutes from midnight.
func ParseClock(label string) (int, error) {
	t, err := time.Parse(clockLayout, strings.ToUpper(strings.TrimSpace(label)))
	if err != nil {
		return 0, fmt.Errorf("invalid clock label %q", label)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock converts minutes from midnight into "h:mm AM|PM".
func FormatClock(minutes int) string {
	minutes = ((minutes % (24 * 60)) + 24*60) % (24 * 60)
	return time.Date(2000, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC).Format(clockLayout)
}
