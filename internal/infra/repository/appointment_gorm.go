package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

var sortColumns = map[string]string{
	"createdAt":  "created_at",
	"created_at": "created_at",
	"date":       "date",
	"status":     "status",
	"name":       "customer_name",
}

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Create / conflict
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := conn(ctx, r.db).Create(ap).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) CountActiveAt(
	ctx context.Context,
	date string,
	time string,
	excludeID string,
) (int64, error) {

	q := conn(ctx, r.db).
		Model(&models.Appointment{}).
		Where("date = ? AND time = ? AND status IN ?", date, time, domain.ActiveStatuses())

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	// Aggregates cannot be locked, so the colliding rows are fetched.
	if inTx(ctx) {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var ids []string
	if err := q.Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("count active appointments: %w", err)
	}
	return int64(len(ids)), nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := conn(ctx, r.db).Where("id = ?", id).First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment_not_found")
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := conn(ctx, r.db).Save(ap).Error; err != nil {
		return fmt.Errorf("update appointment: %w", err)
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id string,
) error {
	res := conn(ctx, r.db).Where("id = ?", id).Delete(&models.Appointment{})
	if res.Error != nil {
		return fmt.Errorf("delete appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("appointment_not_found")
	}
	return nil
}

// --------------------------------------------------
// Availability / listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByDateAndStatus(
	ctx context.Context,
	date string,
	statuses []string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := conn(ctx, r.db).
		Select("id", "date", "time", "service_duration", "status").
		Where("date = ? AND status IN ?", date, statuses).
		Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", date, err)
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, int64, error) {

	q := conn(ctx, r.db).Model(&models.Appointment{})

	switch {
	case f.OwnerID != "" && f.OwnerEmail != "":
		q = q.Where("(user_id = ? OR customer_email = ?)", f.OwnerID, strings.ToLower(f.OwnerEmail))
	case f.OwnerID != "":
		q = q.Where("user_id = ?", f.OwnerID)
	case f.OwnerEmail != "":
		q = q.Where("customer_email = ?", strings.ToLower(f.OwnerEmail))
	}

	if f.Email != "" {
		q = q.Where("customer_email = ?", strings.ToLower(f.Email))
	}
	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(customer_name) LIKE ? OR LOWER(customer_email) LIKE ?)", like, like)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count appointments: %w", err)
	}

	limit := f.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	page := max(f.Page, 1)

	var apps []models.Appointment
	if err := q.
		Order(orderClause(f.SortBy, f.SortOrder)).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&apps).Error; err != nil {
		return nil, 0, fmt.Errorf("list appointments: %w", err)
	}

	return apps, total, nil
}

func orderClause(sortBy, sortOrder string) clause.OrderBy {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	desc := !strings.EqualFold(sortOrder, "asc")

	cols := []clause.OrderByColumn{{Column: clause.Column{Name: col}, Desc: desc}}
	if col != "created_at" {
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: "created_at"}, Desc: desc})
	}
	return clause.OrderBy{Columns: cols}
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
