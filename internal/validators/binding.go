package validators

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SlotChecker is satisfied by the salon time grid.
type SlotChecker interface {
	IsValidSlot(label string) bool
}

// RegisterTimeSlot adds the `timeslot` binding tag, which accepts only
// labels present in grid.
func RegisterTimeSlot(grid SlotChecker) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("timeslot", func(fl validator.FieldLevel) bool {
		return grid.IsValidSlot(fl.Field().String())
	})
}
