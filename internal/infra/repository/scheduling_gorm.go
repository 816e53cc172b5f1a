package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SchedulingGormRepository struct {
	db *gorm.DB
}

func NewSchedulingGormRepository(db *gorm.DB) *SchedulingGormRepository {
	return &SchedulingGormRepository{db: db}
}

// Upsert keeps one entry per appointment. An existing entry is moved to
// the appointment's current slot.
func (r *SchedulingGormRepository) Upsert(
	ctx context.Context,
	entry *models.SchedulingEntry,
) (*models.SchedulingEntry, error) {

	db := conn(ctx, r.db)

	if err := db.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "appointment_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"appointment_date",
				"appointment_time",
				"duration",
				"updated_at",
			}),
		}).
		Create(entry).Error; err != nil {
		return nil, fmt.Errorf("create scheduling entry: %w", err)
	}

	var stored models.SchedulingEntry
	if err := db.
		Where("appointment_id = ?", entry.AppointmentID).
		First(&stored).Error; err != nil {
		return nil, fmt.Errorf("load scheduling entry: %w", err)
	}
	return &stored, nil
}

func (r *SchedulingGormRepository) RemoveByAppointmentID(
	ctx context.Context,
	appointmentID string,
) error {
	if err := conn(ctx, r.db).
		Where("appointment_id = ?", appointmentID).
		Delete(&models.SchedulingEntry{}).Error; err != nil {
		return fmt.Errorf("remove scheduling entry: %w", err)
	}
	return nil
}

func (r *SchedulingGormRepository) ListByDate(
	ctx context.Context,
	date string,
) ([]models.SchedulingEntry, error) {

	var entries []models.SchedulingEntry
	if err := conn(ctx, r.db).
		Where("appointment_date = ?", date).
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list scheduling entries for %s: %w", date, err)
	}
	return entries, nil
}

var _ domain.SchedulingIndex = (*SchedulingGormRepository)(nil)
