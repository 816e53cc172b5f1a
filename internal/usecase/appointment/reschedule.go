package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type RescheduleInput struct {
	AppointmentID string
	NewDate       string
	NewTime       string
	Reason        string
	Caller        domain.Identity
}

type RescheduleAppointment struct {
	repo     domain.Repository
	tx       domain.Transactor
	settings salon.Repository
	grid     *domain.TimeGrid
	audit    *audit.Dispatcher
	log      *slog.Logger
	tz       string
	now      func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	tx domain.Transactor,
	settings salon.Repository,
	grid *domain.TimeGrid,
	audit *audit.Dispatcher,
	log *slog.Logger,
	tz string,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		tx:       tx,
		settings: settings,
		grid:     grid,
		audit:    audit,
		log:      log,
		tz:       tz,
		now:      time.Now,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Slot and date
	// --------------------------------------------------
	if !uc.grid.IsValidSlot(in.NewTime) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}
	if _, err := domain.ParseDate(in.NewDate); err != nil {
		return nil, err
	}

	now := uc.now()
	if in.NewDate < timezone.Today(now, uc.tz) {
		return nil, httperr.ErrBusiness("past_date")
	}

	// --------------------------------------------------
	// Appointment + ownership
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanManage(ap, in.Caller); err != nil {
		return nil, err
	}
	if err := domain.CanReschedule(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	oldDate, oldTime := ap.Date, ap.Time

	// --------------------------------------------------
	// Conflict guard + update
	// --------------------------------------------------
	err = uc.tx.Do(ctx, func(ctx context.Context) error {
		active, err := uc.repo.CountActiveAt(ctx, in.NewDate, in.NewTime, ap.ID)
		if err != nil {
			return err
		}
		if domain.Saturated(active, settings.NumberOfStylists) {
			return httperr.ErrConflict("time_slot_booked")
		}

		if err := domain.Reschedule(ap, domain.RescheduleChange{
			NewDate: in.NewDate,
			NewTime: in.NewTime,
			By:      in.Caller.Actor(),
			Reason:  in.Reason,
		}, now); err != nil {
			return err
		}
		return uc.repo.UpdateAppointment(ctx, ap)
	})
	if err != nil {
		if httperr.IsBusiness(err, "time_slot_booked") {
			metrics.BookingConflicts.WithLabelValues("reschedule").Inc()
		}
		return nil, err
	}

	metrics.StatusTransitions.WithLabelValues(string(domain.StatusRescheduled)).Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   callerID(in.Caller),
		Action:   audit.ActionAppointmentRescheduled,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"old_date": oldDate,
			"old_time": oldTime,
			"new_date": ap.Date,
			"new_time": ap.Time,
		},
	})
	uc.log.Info("appointment rescheduled",
		"appointment_id", ap.ID,
		"date", ap.Date,
		"time", ap.Time,
	)

	return ap, nil
}
