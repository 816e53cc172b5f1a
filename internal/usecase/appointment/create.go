package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID *string

	Customer models.CustomerInfo
	Service  models.ServiceDetails

	Date string
	Time string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	tx       domain.Transactor
	settings salon.Repository
	grid     *domain.TimeGrid
	audit    *audit.Dispatcher
	log      *slog.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	tx domain.Transactor,
	settings salon.Repository,
	grid *domain.TimeGrid,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		tx:       tx,
		settings: settings,
		grid:     grid,
		audit:    audit,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Validation
	// --------------------------------------------------
	validators.NormalizeCustomer(&in.Customer)
	if err := validators.ValidateCustomer(in.Customer); err != nil {
		return nil, err
	}
	if err := validators.ValidateService(in.Service); err != nil {
		return nil, err
	}
	if _, err := domain.ParseDate(in.Date); err != nil {
		return nil, err
	}
	if !uc.grid.IsValidSlot(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time_slot")
	}

	// --------------------------------------------------
	// Capacity
	// --------------------------------------------------
	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		UserID:   in.UserID,
		Customer: in.Customer,
		Service:  in.Service,
		Date:     in.Date,
		Time:     in.Time,
		Status:   string(domain.InitialStatus()),
	}

	// --------------------------------------------------
	// Conflict guard + insert
	// --------------------------------------------------
	err = uc.tx.Do(ctx, func(ctx context.Context) error {
		active, err := uc.repo.CountActiveAt(ctx, in.Date, in.Time, "")
		if err != nil {
			return err
		}
		if domain.Saturated(active, settings.NumberOfStylists) {
			return httperr.ErrConflict("time_slot_booked")
		}
		return uc.repo.CreateAppointment(ctx, ap)
	})
	if err != nil {
		if httperr.IsBusiness(err, "time_slot_booked") {
			metrics.BookingConflicts.WithLabelValues("create").Inc()
			uc.audit.Dispatch(audit.Event{
				UserID: in.UserID,
				Action: audit.ActionAppointmentConflict,
				Entity: audit.EntityAppointment,
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	metrics.AppointmentsBooked.Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
	})
	uc.log.Info("appointment created",
		"appointment_id", ap.ID,
		"date", ap.Date,
		"time", ap.Time,
	)

	return ap, nil
}
