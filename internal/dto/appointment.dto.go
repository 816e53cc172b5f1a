package dto

import (
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AvailabilityDTO struct {
	Date                 string                                  `json:"date"`
	Duration             string                                  `json:"duration"`
	AvailableSlots       []string                                `json:"available_slots"`
	DetailedAvailability map[string]appointment.SlotAvailability `json:"detailed_availability"`
	TotalArtists         int                                     `json:"total_artists"`
	Message              string                                  `json:"message"`
}

type PaginationDTO struct {
	CurrentPage       int   `json:"current_page"`
	TotalPages        int   `json:"total_pages"`
	TotalAppointments int64 `json:"total_appointments"`
	HasNextPage       bool  `json:"has_next_page"`
	HasPrevPage       bool  `json:"has_prev_page"`
	Limit             int   `json:"limit"`
}

type AppointmentPageDTO struct {
	Appointments []models.Appointment `json:"appointments"`
	Pagination   PaginationDTO        `json:"pagination"`
}

func NewPagination(page, limit int, total int64) PaginationDTO {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginationDTO{
		CurrentPage:       page,
		TotalPages:        pages,
		TotalAppointments: total,
		HasNextPage:       page < pages,
		HasPrevPage:       page > 1,
		Limit:             limit,
	}
}
