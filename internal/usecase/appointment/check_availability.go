package appointment

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/salon"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
)

type CheckAvailability struct {
	repo     domain.Repository
	index    domain.SchedulingIndex
	settings salon.Repository
	grid     *domain.TimeGrid
}

func NewCheckAvailability(
	repo domain.Repository,
	index domain.SchedulingIndex,
	settings salon.Repository,
	grid *domain.TimeGrid,
) *CheckAvailability {
	return &CheckAvailability{
		repo:     repo,
		index:    index,
		settings: settings,
		grid:     grid,
	}
}

func (uc *CheckAvailability) Execute(
	ctx context.Context,
	date string,
	duration string,
) (*dto.AvailabilityDTO, error) {

	if _, err := domain.ParseDate(date); err != nil {
		return nil, err
	}
	duration = strings.TrimSpace(duration)
	if duration == "" {
		duration = domain.DefaultDurationText
	}

	settings, err := uc.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	occupants, err := uc.occupants(ctx, date)
	if err != nil {
		return nil, err
	}

	av := domain.ComputeAvailability(
		uc.grid,
		settings.NumberOfStylists,
		domain.ParseDuration(duration),
		occupants,
	)

	return &dto.AvailabilityDTO{
		Date:                 date,
		Duration:             duration,
		AvailableSlots:       av.Bookable,
		DetailedAvailability: av.Slots,
		TotalArtists:         settings.NumberOfStylists,
		Message:              fmt.Sprintf("Found %d available time slots", len(av.Bookable)),
	}, nil
}

// occupants merges the confirmed bookings held by the scheduling index with
// the pending and rescheduled ones from the store. When both know the same
// appointment, the store's slot wins.
func (uc *CheckAvailability) occupants(ctx context.Context, date string) ([]domain.Occupant, error) {
	apps, err := uc.repo.ListByDateAndStatus(ctx, date, []string{
		string(domain.StatusPending),
		string(domain.StatusRescheduled),
	})
	if err != nil {
		return nil, err
	}

	entries, err := uc.index.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Occupant, 0, len(apps)+len(entries))
	seen := make(map[string]bool, len(apps))

	for _, ap := range apps {
		seen[ap.ID] = true
		out = append(out, domain.Occupant{
			AppointmentID: ap.ID,
			Time:          ap.Time,
			Duration:      ap.Service.Duration,
		})
	}
	for _, e := range entries {
		if seen[e.AppointmentID] {
			continue
		}
		seen[e.AppointmentID] = true
		out = append(out, domain.Occupant{
			AppointmentID: e.AppointmentID,
			Time:          e.AppointmentTime,
			Duration:      e.Duration,
		})
	}

	return out, nil
}
