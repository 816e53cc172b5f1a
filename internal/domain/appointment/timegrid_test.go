package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTimeGrid(t *testing.T) {
	g := DefaultTimeGrid()
	slots := g.Slots()

	require.Len(t, slots, 33)
	assert.Equal(t, "9:00 AM", slots[0])
	assert.Equal(t, "11:45 AM", slots[11])
	assert.Equal(t, "12:00 PM", slots[12])
	assert.Equal(t, "5:00 PM", slots[len(slots)-1])

	assert.True(t, g.IsValidSlot("10:15 AM"))
	assert.True(t, g.IsValidSlot("1:00 PM"))
	assert.False(t, g.IsValidSlot("10:10 AM"))
	assert.False(t, g.IsValidSlot("5:15 PM"))
	assert.False(t, g.IsValidSlot("8:45 AM"))
	assert.False(t, g.IsValidSlot("10:00"))
	assert.False(t, g.IsValidSlot("10:00 am"))
}

func TestSlotsReturnsCopy(t *testing.T) {
	g := DefaultTimeGrid()
	s := g.Slots()
	s[0] = "changed"

	assert.Equal(t, "9:00 AM", g.Slots()[0])
}

func TestNewTimeGridRejectsBadBounds(t *testing.T) {
	_, err := NewTimeGrid("5:00 PM", "9:00 AM")
	assert.Error(t, err)

	_, err = NewTimeGrid("9:00 AM", "5:10 PM")
	assert.Error(t, err)

	_, err = NewTimeGrid("nine", "5:00 PM")
	assert.Error(t, err)
}

func TestClockLabels(t *testing.T) {
	cases := map[string]int{
		"12:00 AM": 0,
		"9:00 AM":  540,
		"11:45 AM": 705,
		"12:00 PM": 720,
		"12:30 PM": 750,
		"1:00 PM":  780,
		"5:00 PM":  1020,
	}

	for label, minutes := range cases {
		got, err := ParseClock(label)
		require.NoError(t, err, label)
		assert.Equal(t, minutes, got, label)
		assert.Equal(t, label, FormatClock(minutes))
	}

	_, err := ParseClock("13:00 PM")
	assert.Error(t, err)
}
