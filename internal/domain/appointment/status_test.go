package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled", "rescheduled"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), st)
	}

	_, err := ParseStatus("archived")
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestActiveStatuses(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.True(t, StatusRescheduled.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}

func TestCanTransition(t *testing.T) {
	assert.NoError(t, CanTransition(StatusPending, StatusConfirmed))
	assert.NoError(t, CanTransition(StatusConfirmed, StatusCompleted))
	assert.NoError(t, CanTransition(StatusConfirmed, StatusConfirmed))
	assert.NoError(t, CanTransition(StatusRescheduled, StatusConfirmed))

	err := CanTransition(StatusCompleted, StatusPending)
	assert.True(t, httperr.IsBusiness(err, "invalid_transition"))
	assert.Error(t, CanTransition(StatusCancelled, StatusConfirmed))
	assert.Error(t, CanTransition(StatusPending, StatusCompleted))
}

func TestIndexEffectOf(t *testing.T) {
	assert.Equal(t, IndexCreate, IndexEffectOf(StatusConfirmed))
	assert.Equal(t, IndexRemove, IndexEffectOf(StatusCancelled))
	assert.Equal(t, IndexRemove, IndexEffectOf(StatusCompleted))
	assert.Equal(t, IndexNone, IndexEffectOf(StatusRescheduled))
	assert.Equal(t, IndexNone, IndexEffectOf(StatusPending))
}
