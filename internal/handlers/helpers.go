package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// bindError turns a binding failure into a business error, keeping the
// dedicated code for slot labels outside the time grid.
func bindError(err error) error {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			if fe.Tag() == "timeslot" {
				return httperr.ErrBusiness("invalid_time_slot")
			}
		}
	}
	return httperr.ErrBusiness("invalid_request")
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
