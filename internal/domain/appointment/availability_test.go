package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityWithoutBookings(t *testing.T) {
	g := DefaultTimeGrid()

	for _, capacity := range []int{1, 3} {
		av := ComputeAvailability(g, capacity, 60, nil)

		assert.Equal(t, g.Slots(), av.Bookable)
		for _, label := range g.Slots() {
			slot := av.Slots[label]
			assert.True(t, slot.Available, label)
			assert.Equal(t, capacity, slot.AvailableArtists, label)
			assert.Equal(t, capacity, slot.TotalArtists, label)
			assert.Equal(t, SlotAvailable, slot.Status, label)
		}
	}
}

func TestAvailabilityCountsStayInBounds(t *testing.T) {
	g := DefaultTimeGrid()
	occupants := []Occupant{
		{AppointmentID: "a", Time: "10:00 AM", Duration: "1 hour"},
		{AppointmentID: "b", Time: "10:00 AM", Duration: "30 min"},
		{AppointmentID: "c", Time: "10:15 AM", Duration: "45 min"},
		{AppointmentID: "d", Time: "10:30 AM", Duration: "2 hours"},
	}

	av := ComputeAvailability(g, 2, 30, occupants)

	for _, label := range g.Slots() {
		slot := av.Slots[label]
		assert.GreaterOrEqual(t, slot.AvailableArtists, 0, label)
		assert.LessOrEqual(t, slot.AvailableArtists, 2, label)
	}
	assert.Equal(t, SlotFullyBooked, av.Slots["10:30 AM"].Status)
}

func TestAvailabilityDurationConflict(t *testing.T) {
	g := DefaultTimeGrid()
	occupants := []Occupant{{AppointmentID: "a", Time: "11:00 AM", Duration: "30 min"}}

	av := ComputeAvailability(g, 1, 60, occupants)

	// 10:00 needs 10:00..10:45, and the closed end of the 11:00 booking does
	// not reach back that far.
	assert.Equal(t, SlotAvailable, av.Slots["10:00 AM"].Status)

	slot := av.Slots["10:15 AM"]
	assert.Equal(t, SlotDurationConflict, slot.Status)
	assert.False(t, slot.Available)
	assert.Equal(t, 1, slot.AvailableArtists)

	assert.Equal(t, SlotFullyBooked, av.Slots["11:00 AM"].Status)
	assert.Equal(t, SlotFullyBooked, av.Slots["11:30 AM"].Status)
	assert.Equal(t, SlotAvailable, av.Slots["11:45 AM"].Status)
	assert.NotContains(t, av.Bookable, "10:15 AM")
}

func TestAvailabilityRunsPastClosing(t *testing.T) {
	g := DefaultTimeGrid()

	av := ComputeAvailability(g, 1, 120, nil)

	assert.Equal(t, SlotAvailable, av.Slots["4:30 PM"].Status)
	assert.Equal(t, SlotAvailable, av.Slots["5:00 PM"].Status)
}

func TestAvailabilityFullyBookedAtCapacity(t *testing.T) {
	g := DefaultTimeGrid()
	occupants := []Occupant{
		{AppointmentID: "a", Time: "1:00 PM", Duration: "30 min"},
		{AppointmentID: "b", Time: "1:00 PM", Duration: "30 min"},
	}

	av := ComputeAvailability(g, 2, 30, occupants)

	slot := av.Slots["1:00 PM"]
	require.Equal(t, SlotFullyBooked, slot.Status)
	assert.False(t, slot.Available)
	assert.Equal(t, 0, slot.AvailableArtists)

	av = ComputeAvailability(g, 3, 30, occupants)
	assert.Equal(t, SlotAvailable, av.Slots["1:00 PM"].Status)
	assert.Equal(t, 1, av.Slots["1:00 PM"].AvailableArtists)
}

func TestAvailabilitySkipsUnreadableTimes(t *testing.T) {
	g := DefaultTimeGrid()
	occupants := []Occupant{{AppointmentID: "a", Time: "noon", Duration: "30 min"}}

	av := ComputeAvailability(g, 1, 30, occupants)

	assert.Len(t, av.Bookable, len(g.Slots()))
}

func TestAvailabilityHugeDurationStopsAtClosing(t *testing.T) {
	g := DefaultTimeGrid()
	occupants := []Occupant{{AppointmentID: "a", Time: "4:00 PM", Duration: "30 min"}}

	done := make(chan Availability, 1)
	go func() {
		done <- ComputeAvailability(g, 1, ParseDuration("99999999 hours"), occupants)
	}()

	select {
	case av := <-done:
		assert.Equal(t, SlotDurationConflict, av.Slots["9:00 AM"].Status)
		assert.Equal(t, SlotFullyBooked, av.Slots["4:00 PM"].Status)
		assert.True(t, av.Slots["4:45 PM"].Available)
		assert.Equal(t, []string{"4:45 PM", "5:00 PM"}, av.Bookable)
	case <-time.After(2 * time.Second):
		t.Fatal("availability did not finish")
	}
}

func TestAvailabilityNegativeDurationChecksNothingAhead(t *testing.T) {
	g := DefaultTimeGrid()

	av := ComputeAvailability(g, 1, -45, nil)
	assert.Equal(t, g.Slots(), av.Bookable)
}
