package appointment

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const callerListLimit = 100

type ListInput struct {
	Caller domain.Identity

	Email  string
	UserID string
	Date   string
	Status string
}

// ListAppointments returns the caller's bookings ordered by date and
// time. Admins see everyone's.
type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListInput,
) ([]models.Appointment, error) {

	f := domain.ListFilter{
		Email:  in.Email,
		UserID: in.UserID,
		Date:   in.Date,
		Status: in.Status,
		Limit:  callerListLimit,
	}
	if !in.Caller.Admin {
		if in.Caller.UserID == "" && in.Caller.Email == "" {
			return nil, httperr.ErrUnauthorized("authentication_required")
		}
		f.OwnerID = in.Caller.UserID
		f.OwnerEmail = in.Caller.Email
	}
	if in.Status != "" {
		if _, err := domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	apps, _, err := uc.repo.ListAppointments(ctx, f)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(apps, func(i, j int) bool {
		if apps[i].Date != apps[j].Date {
			return apps[i].Date < apps[j].Date
		}
		return clockOf(apps[i].Time) < clockOf(apps[j].Time)
	})
	return apps, nil
}

func clockOf(label string) int {
	m, err := domain.ParseClock(label)
	if err != nil {
		return -1
	}
	return m
}

// ======================================================
// ADMIN PAGE
// ======================================================

type AdminListInput struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Status    string
	Search    string
	Date      string
}

type ListAppointmentsPage struct {
	repo domain.Repository
}

func NewListAppointmentsPage(repo domain.Repository) *ListAppointmentsPage {
	return &ListAppointmentsPage{repo: repo}
}

func (uc *ListAppointmentsPage) Execute(
	ctx context.Context,
	in AdminListInput,
) (*dto.AppointmentPageDTO, error) {

	page := max(in.Page, 1)
	limit := in.Limit
	if limit <= 0 {
		limit = 10
	}
	limit = min(limit, 100)

	if in.Status != "" {
		if _, err := domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	apps, total, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		Status:    in.Status,
		Search:    in.Search,
		Date:      in.Date,
		SortBy:    in.SortBy,
		SortOrder: in.SortOrder,
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.Appointment{}
	}

	return &dto.AppointmentPageDTO{
		Appointments: apps,
		Pagination:   dto.NewPagination(page, limit, total),
	}, nil
}
