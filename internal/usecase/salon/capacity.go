package salon

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type GetSalonCapacity struct {
	repo salon.Repository
}

func NewGetSalonCapacity(repo salon.Repository) *GetSalonCapacity {
	return &GetSalonCapacity{repo: repo}
}

func (uc *GetSalonCapacity) Execute(ctx context.Context) (*models.SalonSettings, error) {
	return uc.repo.GetSettings(ctx)
}

type SetSalonCapacity struct {
	repo  salon.Repository
	audit *audit.Dispatcher
	log   *slog.Logger
}

func NewSetSalonCapacity(
	repo salon.Repository,
	audit *audit.Dispatcher,
	log *slog.Logger,
) *SetSalonCapacity {
	return &SetSalonCapacity{repo: repo, audit: audit, log: log}
}

// Execute stores a new stylist count. adminID identifies who changed it.
func (uc *SetSalonCapacity) Execute(
	ctx context.Context,
	n int,
	adminID *string,
) (*models.SalonSettings, error) {

	if err := salon.ValidateCapacity(n); err != nil {
		return nil, err
	}

	settings, err := uc.repo.SetStylists(ctx, n)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   adminID,
		Action:   audit.ActionSalonCapacityUpdated,
		Entity:   audit.EntitySalonSettings,
		Metadata: map[string]any{"number_of_stylists": n},
	})
	uc.log.Info("salon capacity updated", "number_of_stylists", n)

	return settings, nil
}
