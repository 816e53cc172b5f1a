package appointment

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// Appointment store
// ======================================================

type memoryRepo struct {
	mu   sync.Mutex
	seq  int
	apps map[string]*models.Appointment
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{apps: map[string]*models.Appointment{}}
}

func clone(ap *models.Appointment) *models.Appointment {
	cp := *ap
	cp.RescheduleHistory = slices.Clone(ap.RescheduleHistory)
	return &cp
}

func (r *memoryRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	if ap.ID == "" {
		ap.ID = fmt.Sprintf("ap-%d", r.seq)
	}
	ap.CreatedAt = time.Date(2024, 1, 1, 0, r.seq, 0, 0, time.UTC)
	r.apps[ap.ID] = clone(ap)
	return nil
}

func (r *memoryRepo) CountActiveAt(_ context.Context, date, clock, excludeID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for _, ap := range r.apps {
		if ap.ID != excludeID && ap.Date == date && ap.Time == clock && domain.Status(ap.Status).IsActive() {
			n++
		}
	}
	return n, nil
}

func (r *memoryRepo) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.apps[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}
	return clone(ap), nil
}

func (r *memoryRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.apps[ap.ID] = clone(ap)
	return nil
}

func (r *memoryRepo) DeleteAppointment(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.apps[id]; !ok {
		return httperr.ErrNotFound("appointment_not_found")
	}
	delete(r.apps, id)
	return nil
}

func (r *memoryRepo) ListByDateAndStatus(_ context.Context, date string, statuses []string) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.apps {
		if ap.Date == date && slices.Contains(statuses, ap.Status) {
			out = append(out, *clone(ap))
		}
	}
	return out, nil
}

func (r *memoryRepo) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Appointment
	for _, ap := range r.apps {
		if f.OwnerID != "" || f.OwnerEmail != "" {
			ownID := ap.UserID != nil && *ap.UserID == f.OwnerID
			ownEmail := f.OwnerEmail != "" && ap.Customer.Email == f.OwnerEmail
			if !ownID && !ownEmail {
				continue
			}
		}
		if f.Date != "" && ap.Date != f.Date {
			continue
		}
		if f.Status != "" && ap.Status != f.Status {
			continue
		}
		out = append(out, *clone(ap))
	}
	slices.SortFunc(out, func(a, b models.Appointment) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})

	total := int64(len(out))
	if f.Limit > 0 {
		start := min((max(f.Page, 1)-1)*f.Limit, len(out))
		out = out[start:min(start+f.Limit, len(out))]
	}
	return out, total, nil
}

func (r *memoryRepo) put(ap *models.Appointment) {
	_ = r.CreateAppointment(context.Background(), ap)
}

// ======================================================
// Scheduling index
// ======================================================

type memoryIndex struct {
	mu      sync.Mutex
	entries map[string]models.SchedulingEntry
	fail    error
}

func newMemoryIndex() *memoryIndex {
	return &memoryIndex{entries: map[string]models.SchedulingEntry{}}
}

func (i *memoryIndex) Upsert(_ context.Context, e *models.SchedulingEntry) (*models.SchedulingEntry, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.fail != nil {
		return nil, i.fail
	}
	if existing, ok := i.entries[e.AppointmentID]; ok {
		existing.AppointmentDate = e.AppointmentDate
		existing.AppointmentTime = e.AppointmentTime
		existing.Duration = e.Duration
		i.entries[e.AppointmentID] = existing
		return &existing, nil
	}
	e.ID = "entry-" + e.AppointmentID
	i.entries[e.AppointmentID] = *e
	return e, nil
}

func (i *memoryIndex) RemoveByAppointmentID(_ context.Context, id string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.fail != nil {
		return i.fail
	}
	delete(i.entries, id)
	return nil
}

func (i *memoryIndex) ListByDate(_ context.Context, date string) ([]models.SchedulingEntry, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	var out []models.SchedulingEntry
	for _, e := range i.entries {
		if e.AppointmentDate == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (i *memoryIndex) count() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.entries)
}

var errIndexDown = errors.New("index unavailable")

// ======================================================
// Settings / transactions
// ======================================================

type memorySettings struct {
	stylists int
}

func (s *memorySettings) GetSettings(context.Context) (*models.SalonSettings, error) {
	if s.stylists == 0 {
		s.stylists = 1
	}
	return &models.SalonSettings{ID: models.SalonSettingsID, NumberOfStylists: s.stylists}, nil
}

func (s *memorySettings) SetStylists(_ context.Context, n int) (*models.SalonSettings, error) {
	s.stylists = n
	return s.GetSettings(context.Background())
}

type directTx struct{}

func (directTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
