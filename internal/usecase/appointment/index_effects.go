package appointment

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// indexMaintainer applies scheduling index side effects after a status
// change has been stored. Failures are logged and counted, never returned.
type indexMaintainer struct {
	index domain.SchedulingIndex
	log   *slog.Logger
}

func (m indexMaintainer) apply(ctx context.Context, ap *models.Appointment, effect domain.IndexEffect) {
	switch effect {
	case domain.IndexCreate:
		_, err := m.index.Upsert(ctx, &models.SchedulingEntry{
			AppointmentDate: ap.Date,
			AppointmentTime: ap.Time,
			Duration:        ap.Service.Duration,
			AppointmentID:   ap.ID,
		})
		if err != nil {
			metrics.IndexFailures.WithLabelValues("create").Inc()
			m.log.Warn("scheduling index create failed", "appointment_id", ap.ID, "err", err)
		}
	case domain.IndexRemove:
		m.remove(ctx, ap.ID)
	}
}

func (m indexMaintainer) remove(ctx context.Context, appointmentID string) {
	if err := m.index.RemoveByAppointmentID(ctx, appointmentID); err != nil {
		metrics.IndexFailures.WithLabelValues("remove").Inc()
		m.log.Warn("scheduling index remove failed", "appointment_id", appointmentID, "err", err)
	}
}
