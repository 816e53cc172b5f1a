package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

type AdminAppointmentsHandler struct {
	page   *ucAppointment.ListAppointmentsPage
	status *ucAppointment.UpdateAppointmentStatus
}

func NewAdminAppointmentsHandler(
	page *ucAppointment.ListAppointmentsPage,
	status *ucAppointment.UpdateAppointmentStatus,
) *AdminAppointmentsHandler {
	return &AdminAppointmentsHandler{page: page, status: status}
}

type AdminUpdateStatusRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
}

func (h *AdminAppointmentsHandler) List(c *gin.Context) {
	out, err := h.page.Execute(c.Request.Context(), ucAppointment.AdminListInput{
		Page:      queryInt(c, "page", 1),
		Limit:     queryInt(c, "limit", 10),
		SortBy:    c.DefaultQuery("sort_by", "createdAt"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
		Status:    c.Query("status"),
		Search:    c.Query("search"),
		Date:      c.Query("date"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AdminAppointmentsHandler) UpdateStatus(c *gin.Context) {
	var req AdminUpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, bindError(err))
		return
	}

	id, _ := middleware.IdentityFrom(c)
	ap, err := h.status.Execute(c.Request.Context(), ucAppointment.UpdateStatusInput{
		AppointmentID: req.AppointmentID,
		Status:        req.Status,
		Caller:        id,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Appointment status updated",
		"appointment": ap,
	})
}
