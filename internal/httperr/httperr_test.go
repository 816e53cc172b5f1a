package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondMapsKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{ErrBusiness("invalid_time_slot"), http.StatusBadRequest, "invalid_time_slot"},
		{ErrUnauthorized("authentication_required"), http.StatusUnauthorized, "authentication_required"},
		{ErrForbidden("admin_required"), http.StatusForbidden, "admin_required"},
		{ErrNotFound("appointment_not_found"), http.StatusNotFound, "appointment_not_found"},
		{fmt.Errorf("create: %w", ErrConflict("time_slot_booked")), http.StatusConflict, "time_slot_booked"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Respond(c, tc.err)

		require.Equal(t, tc.status, w.Code)
		assert.Contains(t, w.Body.String(), `"error_code":"`+tc.code+`"`)
	}
}

func TestIsBusinessUnwraps(t *testing.T) {
	err := fmt.Errorf("reschedule: %w", ErrConflict("time_slot_booked"))

	assert.True(t, IsBusiness(err, "time_slot_booked"))
	assert.False(t, IsBusiness(err, "invalid_date"))

	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, KindConflict, kind)
}
