package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type UpdateStatusInput struct {
	AppointmentID string
	Status        string
	Caller        domain.Identity
}

type UpdateAppointmentStatus struct {
	repo   domain.Repository
	index  indexMaintainer
	audit  *audit.Dispatcher
	log    *slog.Logger
	strict bool
}

// NewUpdateAppointmentStatus builds the status use case. With strict set,
// changes must follow the transition table.
func NewUpdateAppointmentStatus(
	repo domain.Repository,
	index domain.SchedulingIndex,
	audit *audit.Dispatcher,
	log *slog.Logger,
	strict bool,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:   repo,
		index:  indexMaintainer{index: index, log: log},
		audit:  audit,
		log:    log,
		strict: strict,
	}
}

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	to, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}
	if err := domain.CanManage(ap, in.Caller); err != nil {
		return nil, err
	}

	from, err := domain.ChangeStatus(ap, to, uc.strict)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// The status change is stored; index upkeep cannot undo it.
	uc.index.apply(ctx, ap, domain.IndexEffectOf(to))

	metrics.StatusTransitions.WithLabelValues(string(to)).Inc()
	uc.audit.Dispatch(audit.Event{
		UserID:   callerID(in.Caller),
		Action:   audit.ActionAppointmentStatusChanged,
		Entity:   audit.EntityAppointment,
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"from": from,
			"to":   to,
		},
	})
	uc.log.Info("appointment status changed",
		"appointment_id", ap.ID,
		"from", from,
		"to", to,
	)

	return ap, nil
}

func callerID(id domain.Identity) *string {
	if id.UserID == "" {
		return nil
	}
	v := id.UserID
	return &v
}
