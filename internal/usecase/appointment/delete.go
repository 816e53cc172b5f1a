package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

// DeleteAppointment removes the record outright. Cancelling goes through
// UpdateAppointmentStatus instead and keeps the record.
type DeleteAppointment struct {
	repo  domain.Repository
	index indexMaintainer
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	index domain.SchedulingIndex,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		index: indexMaintainer{index: index, log: log},
		audit: audit,
		log:   log,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	caller domain.Identity,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return err
	}
	if err := domain.CanManage(ap, caller); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	// Drop the entry a confirmed booking may have left behind.
	uc.index.remove(ctx, ap.ID)

	uc.audit.Dispatch(audit.Event{
		UserID:   callerID(caller),
		Action:   audit.ActionAppointmentDeleted,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"date":   ap.Date,
			"time":   ap.Time,
			"status": ap.Status,
		},
	})
	uc.log.Info("appointment deleted", "appointment_id", ap.ID)

	return nil
}
