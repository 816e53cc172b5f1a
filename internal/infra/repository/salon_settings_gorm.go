package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SalonSettingsGormRepository struct {
	db *gorm.DB
}

func NewSalonSettingsGormRepository(db *gorm.DB) *SalonSettingsGormRepository {
	return &SalonSettingsGormRepository{db: db}
}

func (r *SalonSettingsGormRepository) GetSettings(ctx context.Context) (*models.SalonSettings, error) {
	settings := models.SalonSettings{
		ID:               models.SalonSettingsID,
		NumberOfStylists: salon.DefaultStylists,
	}

	// Concurrent first reads may both try to insert the row.
	if err := conn(ctx, r.db).
		Clauses(clause.OnConflict{DoNothing: true}).
		FirstOrCreate(&settings, models.SalonSettings{ID: models.SalonSettingsID}).Error; err != nil {
		return nil, fmt.Errorf("load salon settings: %w", err)
	}
	return &settings, nil
}

func (r *SalonSettingsGormRepository) SetStylists(ctx context.Context, n int) (*models.SalonSettings, error) {
	settings, err := r.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.NumberOfStylists = n
	if err := conn(ctx, r.db).Save(settings).Error; err != nil {
		return nil, fmt.Errorf("save salon settings: %w", err)
	}
	return settings, nil
}

var _ salon.Repository = (*SalonSettingsGormRepository)(nil)
