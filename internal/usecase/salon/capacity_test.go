package salon

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type memorySettings struct {
	settings *models.SalonSettings
}

func (m *memorySettings) GetSettings(ctx context.Context) (*models.SalonSettings, error) {
	if m.settings == nil {
		m.settings = &models.SalonSettings{ID: models.SalonSettingsID, NumberOfStylists: 1}
	}
	cp := *m.settings
	return &cp, nil
}

func (m *memorySettings) SetStylists(ctx context.Context, n int) (*models.SalonSettings, error) {
	if _, err := m.GetSettings(ctx); err != nil {
		return nil, err
	}
	m.settings.NumberOfStylists = n
	cp := *m.settings
	return &cp, nil
}

func TestCapacityDefaultsToOne(t *testing.T) {
	got, err := NewGetSalonCapacity(&memorySettings{}).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.NumberOfStylists)
}

func TestSetCapacityBounds(t *testing.T) {
	ctx := context.Background()
	repo := &memorySettings{}
	set := NewSetSalonCapacity(repo, nil, logger.Discard())
	get := NewGetSalonCapacity(repo)

	for _, n := range []int{0, 51, -3} {
		_, err := set.Execute(ctx, n, nil)
		assert.True(t, httperr.IsBusiness(err, "invalid_capacity"), "n=%d", n)
	}

	_, err := set.Execute(ctx, 5, nil)
	require.NoError(t, err)

	got, err := get.Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, got.NumberOfStylists)

	_, err = set.Execute(ctx, 50, nil)
	assert.NoError(t, err)
	_, err = set.Execute(ctx, 1, nil)
	assert.NoError(t, err)
}
