package appointment

import "github.com/BruksfildServices01/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
	StatusRescheduled Status = "rescheduled"
)

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled:
		return st, nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// IsActive reports whether appointments in this status hold a stylist.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusRescheduled
}

func ActiveStatuses() []string {
	return []string{
		string(StatusPending),
		string(StatusConfirmed),
		string(StatusRescheduled),
	}
}

// InitialStatus is the status of a freshly booked appointment.
func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Transitions
// ===============================

var transitions = map[Status][]Status{
	StatusPending:     {StatusConfirmed, StatusCancelled, StatusRescheduled},
	StatusConfirmed:   {StatusCompleted, StatusCancelled, StatusRescheduled},
	StatusRescheduled: {StatusConfirmed, StatusCompleted, StatusCancelled, StatusRescheduled},
	StatusCompleted:   {},
	StatusCancelled:   {},
}

// CanTransition checks the transition table. Setting the current status
// again is always allowed.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.ErrConflict("invalid_transition")
}

// ===============================
// Scheduling index effects
// ===============================

type IndexEffect int

const (
	IndexNone IndexEffect = iota
	IndexCreate
	IndexRemove
)

// IndexEffectOf tells which scheduling index change follows a move into to.
func IndexEffectOf(to Status) IndexEffect {
	switch to {
	case StatusConfirmed:
		return IndexCreate
	case StatusCancelled, StatusCompleted:
		return IndexRemove
	}
	return IndexNone
}
