package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Actor is who asked for a reschedule.
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorAdmin    Actor = "admin"
)

// Identity is the authenticated caller of a mutating operation.
type Identity struct {
	UserID string
	Email  string
	Admin  bool
}

func (id Identity) Actor() Actor {
	if id.Admin {
		return ActorAdmin
	}
	return ActorCustomer
}

// ===============================
// Domain Actions
// ===============================

// ChangeStatus moves ap into to. With strict set, the transition table is
// enforced; otherwise any recognised status may overwrite the current one.
func ChangeStatus(ap *models.Appointment, to Status, strict bool) (Status, error) {
	from := Status(ap.Status)
	if strict {
		if err := CanTransition(from, to); err != nil {
			return from, err
		}
	}
	ap.Status = string(to)
	return from, nil
}

type RescheduleChange struct {
	NewDate string
	NewTime string
	By      Actor
	Reason  string
}

// CanReschedule rejects appointments that already reached a final status.
func CanReschedule(current Status) error {
	if current == StatusCompleted || current == StatusCancelled {
		return httperr.ErrBusiness("appointment_not_reschedulable")
	}
	return nil
}

// Reschedule moves ap to a new slot and records the move in its history.
func Reschedule(ap *models.Appointment, ch RescheduleChange, now time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.RescheduleHistory = append(ap.RescheduleHistory, models.RescheduleRecord{
		OldDate:       ap.Date,
		OldTime:       ap.Time,
		NewDate:       ch.NewDate,
		NewTime:       ch.NewTime,
		RescheduledBy: string(ch.By),
		RescheduledAt: now,
		Reason:        strings.TrimSpace(ch.Reason),
	})

	ap.Date = ch.NewDate
	ap.Time = ch.NewTime
	ap.Status = string(StatusRescheduled)
	return nil
}

// CanManage allows admins, the account that booked ap, and callers whose
// email matches the customer on the booking.
func CanManage(ap *models.Appointment, id Identity) error {
	if id.Admin {
		return nil
	}
	if ap.UserID != nil && id.UserID != "" && *ap.UserID == id.UserID {
		return nil
	}
	if id.Email != "" && strings.EqualFold(ap.Customer.Email, id.Email) {
		return nil
	}
	return httperr.ErrForbidden("not_appointment_owner")
}

// Saturated reports whether active bookings at one exact slot already use
// every stylist.
func Saturated(active int64, capacity int) bool {
	return active >= int64(max(capacity, 1))
}

// ParseDate checks a YYYY-MM-DD calendar day.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}
	return d, nil
}

const DateLayout = "2006-01-02"
