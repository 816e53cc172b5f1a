package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	grid *domain.TimeGrid

	create     *ucAppointment.CreateAppointment
	check      *ucAppointment.CheckAvailability
	list       *ucAppointment.ListAppointments
	get        *ucAppointment.GetAppointment
	status     *ucAppointment.UpdateAppointmentStatus
	reschedule *ucAppointment.RescheduleAppointment
	remove     *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	grid *domain.TimeGrid,
	create *ucAppointment.CreateAppointment,
	check *ucAppointment.CheckAvailability,
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
	status *ucAppointment.UpdateAppointmentStatus,
	reschedule *ucAppointment.RescheduleAppointment,
	remove *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		grid:       grid,
		create:     create,
		check:      check,
		list:       list,
		get:        get,
		status:     status,
		reschedule: reschedule,
		remove:     remove,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CustomerInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ServiceDetailsRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Price    string `json:"price"`
	Gender   string `json:"gender"`
}

type CreateAppointmentRequest struct {
	CustomerInfo   CustomerInfoRequest   `json:"customer_info"`
	ServiceDetails ServiceDetailsRequest `json:"service_details"`
	Date           string                `json:"date" binding:"required"`
	Time           string                `json:"time" binding:"required,timeslot"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	NewDate string `json:"new_date" binding:"required"`
	NewTime string `json:"new_time" binding:"required,timeslot"`
	Reason  string `json:"reason" binding:"max=500"`
}

// ======================================================
// TIME GRID / AVAILABILITY
// ======================================================

func (h *AppointmentHandler) TimeSlots(c *gin.Context) {
	httpresp.List(c, h.grid.Slots())
}

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	out, err := h.check.Execute(c.Request.Context(), date, c.Query("duration"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, bindError(err))
		return
	}

	in := ucAppointment.CreateAppointmentInput{
		Customer: models.CustomerInfo{
			Name:  req.CustomerInfo.Name,
			Email: req.CustomerInfo.Email,
			Phone: req.CustomerInfo.Phone,
		},
		Service: models.ServiceDetails{
			ID:       req.ServiceDetails.ID,
			Name:     req.ServiceDetails.Name,
			Duration: req.ServiceDetails.Duration,
			Price:    req.ServiceDetails.Price,
			Gender:   req.ServiceDetails.Gender,
		},
		Date: req.Date,
		Time: req.Time,
	}
	if id, ok := middleware.IdentityFrom(c); ok {
		in.UserID = optionalID(id.UserID)
	}

	ap, err := h.create.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)

	apps, err := h.list.Execute(c.Request.Context(), ucAppointment.ListInput{
		Caller: id,
		Email:  c.Query("email"),
		UserID: c.Query("user_id"),
		Date:   c.Query("date"),
		Status: c.Query("status"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)

	ap, err := h.get.Execute(c.Request.Context(), c.Param("id"), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// STATUS / RESCHEDULE / DELETE
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, bindError(err))
		return
	}

	id, _ := middleware.IdentityFrom(c)
	ap, err := h.status.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: c.Param("id"),
		Status:        req.Status,
		Caller:        id,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, bindError(err))
		return
	}

	id, _ := middleware.IdentityFrom(c)
	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleInput{
		AppointmentID: c.Param("id"),
		NewDate:       req.NewDate,
		NewTime:       req.NewTime,
		Reason:        req.Reason,
		Caller:        id,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, _ := middleware.IdentityFrom(c)

	if err := h.remove.Execute(c.Request.Context(), c.Param("id"), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Appointment deleted successfully"})
}
