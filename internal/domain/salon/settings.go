package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	MinStylists     = 1
	MaxStylists     = 50
	DefaultStylists = 1
)

func ValidateCapacity(n int) error {
	if n < MinStylists || n > MaxStylists {
		return httperr.ErrBusiness("invalid_capacity")
	}
	return nil
}

// Repository persists the salon settings singleton.
type Repository interface {
	// GetSettings returns the settings, creating the default row when absent.
	GetSettings(ctx context.Context) (*models.SalonSettings, error)

	SetStylists(ctx context.Context, n int) (*models.SalonSettings, error)
}
