package appointment

type SlotStatus string

const (
	SlotAvailable        SlotStatus = "available"
	SlotFullyBooked      SlotStatus = "fully_booked"
	SlotDurationConflict SlotStatus = "duration_conflict"
)

// Occupant is an active booking that consumes capacity on the queried date.
type Occupant struct {
	AppointmentID string
	Time          string
	Duration      string
}

type SlotAvailability struct {
	Available        bool       `json:"available"`
	AvailableArtists int        `json:"available_artists"`
	TotalArtists     int        `json:"total_artists"`
	Status           SlotStatus `json:"status"`
}

type Availability struct {
	Slots    map[string]SlotAvailability
	Bookable []string
}

type occupancy struct {
	start    int
	duration int
}

// ComputeAvailability evaluates every slot of grid for a booking of
// durationMin minutes given capacity interchangeable stylists.
func ComputeAvailability(
	grid *TimeGrid,
	capacity int,
	durationMin int,
	occupants []Occupant,
) Availability {

	booked := make([]occupancy, 0, len(occupants))
	for _, o := range occupants {
		start, err := ParseClock(o.Time)
		if err != nil {
			continue
		}
		booked = append(booked, occupancy{start: start, duration: ParseDuration(o.Duration)})
	}

	conflicts := make(map[int]int, len(grid.slots))
	for _, label := range grid.slots {
		slot := grid.minutes[label]
		for _, b := range booked {
			if Occupies(b.start, b.duration, slot) {
				conflicts[slot]++
			}
		}
	}

	out := Availability{
		Slots:    make(map[string]SlotAvailability, len(grid.slots)),
		Bookable: []string{},
	}

	// Sub-slots past the last grid slot never count, so the duration
	// walk stops there.
	closing := 0
	if n := len(grid.slots); n > 0 {
		closing = grid.minutes[grid.slots[n-1]] + SlotMinutes
	}

	for _, label := range grid.slots {
		start := grid.minutes[label]
		end := min(start+max(durationMin, 0), closing)

		free := max(0, capacity-conflicts[start])
		isAvailable := free > 0

		canStart := true
		for cur := start; cur < end; cur += SlotMinutes {
			if _, ok := grid.labelAt(cur); !ok {
				continue
			}
			if conflicts[cur] >= capacity {
				canStart = false
				break
			}
		}

		status := SlotAvailable
		switch {
		case !isAvailable:
			status = SlotFullyBooked
		case !canStart:
			status = SlotDurationConflict
		}

		bookable := isAvailable && canStart
		out.Slots[label] = SlotAvailability{
			Available:        bookable,
			AvailableArtists: free,
			TotalArtists:     capacity,
			Status:           status,
		}
		if bookable {
			out.Bookable = append(out.Bookable, label)
		}
	}

	return out
}
