package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// messages holds the caller-facing text for known error codes.
var messages = map[string]string{
	"invalid_request":               "Invalid request payload.",
	"invalid_date":                  "Date must use the YYYY-MM-DD format.",
	"invalid_time_slot":             "Invalid time slot.",
	"invalid_status":                "Status must be one of pending, confirmed, completed, cancelled, rescheduled.",
	"invalid_transition":            "This status change is not allowed.",
	"invalid_customer_name":         "Name must be between 2 and 100 characters.",
	"invalid_customer_email":        "Please provide a valid email address.",
	"invalid_customer_phone":        "Phone number must be between 10 and 15 characters.",
	"invalid_service":               "Service name and duration are required.",
	"invalid_gender":                "Gender must be men or women.",
	"invalid_capacity":              "Number of stylists must be between 1 and 50.",
	"past_date":                     "Cannot reschedule to a past date.",
	"appointment_not_reschedulable": "Cannot reschedule completed or cancelled appointments.",
	"appointment_not_found":         "Appointment not found.",
	"time_slot_booked":              "This time slot is already booked. Please choose another time.",
	"authentication_required":       "Authentication required.",
	"invalid_token":                 "Invalid or expired token.",
	"invalid_credentials":           "Invalid email or password.",
	"email_already_registered":      "An account with this email already exists.",
	"admin_required":                "Admin access required.",
	"not_appointment_owner":         "You can only manage your own appointments.",
	"rate_limited":                  "Too many requests. Please slow down.",
}

func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return code
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// Respond maps err onto an HTTP response. Business errors keep their code,
// anything else is reported as a generic internal error.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		_ = c.Error(err)
		Internal(c, "internal_error", "Internal server error.")
		return
	}

	msg := Message(be.Code)
	switch be.Kind {
	case KindUnauthorized:
		Unauthorized(c, be.Code, msg)
	case KindForbidden:
		Forbidden(c, be.Code, msg)
	case KindNotFound:
		NotFound(c, be.Code, msg)
	case KindConflict:
		Conflict(c, be.Code, msg)
	default:
		BadRequest(c, be.Code, msg)
	}
}

// Abort is Respond for middleware: it stops the handler chain.
func Abort(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}
