package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
)

type SalonSettingsHandler struct {
	get *ucSalon.GetSalonCapacity
	set *ucSalon.SetSalonCapacity
}

func NewSalonSettingsHandler(
	get *ucSalon.GetSalonCapacity,
	set *ucSalon.SetSalonCapacity,
) *SalonSettingsHandler {
	return &SalonSettingsHandler{get: get, set: set}
}

type UpdateSalonSettingsRequest struct {
	NumberOfStylists *int `json:"number_of_stylists" binding:"required"`
}

func (h *SalonSettingsHandler) Get(c *gin.Context) {
	settings, err := h.get.Execute(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, settings)
}

func (h *SalonSettingsHandler) Update(c *gin.Context) {
	var req UpdateSalonSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_capacity"))
		return
	}

	id, _ := middleware.IdentityFrom(c)
	settings, err := h.set.Execute(c.Request.Context(), *req.NumberOfStylists, optionalID(id.UserID))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, settings)
}
