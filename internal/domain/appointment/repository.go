package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ListFilter narrows appointment listings. Empty fields do not filter.
type ListFilter struct {
	// OwnerID and OwnerEmail restrict results to one customer; either match
	// is enough.
	OwnerID    string
	OwnerEmail string

	Email  string
	UserID string
	Date   string
	Status string
	Search string

	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type Repository interface {
	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CountActiveAt counts active appointments booked at exactly date and
	// time, leaving out excludeID. Inside a transaction the rows are locked.
	CountActiveAt(
		ctx context.Context,
		date string,
		time string,
		excludeID string,
	) (int64, error)

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id string,
	) error

	// -------- Availability / listing --------
	ListByDateAndStatus(
		ctx context.Context,
		date string,
		statuses []string,
	) ([]models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		f ListFilter,
	) ([]models.Appointment, int64, error)
}

// SchedulingIndex stores the projection of confirmed appointments.
type SchedulingIndex interface {
	// Upsert creates the entry for entry.AppointmentID, or returns the one
	// that already exists.
	Upsert(
		ctx context.Context,
		entry *models.SchedulingEntry,
	) (*models.SchedulingEntry, error)

	RemoveByAppointmentID(
		ctx context.Context,
		appointmentID string,
	) error

	ListByDate(
		ctx context.Context,
		date string,
	) ([]models.SchedulingEntry, error)
}

// Transactor runs fn as one unit of work. Repositories called with the
// context passed to fn take part in it.
type Transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
