package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var validate = validator.New()

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsEmailValid(email string) bool {
	return validate.Var(email, "required,email") == nil
}

// NormalizeCustomer trims the customer fields and lower-cases the email.
func NormalizeCustomer(c *models.CustomerInfo) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = NormalizeEmail(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
}

func ValidateCustomer(c models.CustomerInfo) error {
	if n := utf8.RuneCountInString(c.Name); n < 2 || n > 100 {
		return httperr.ErrBusiness("invalid_customer_name")
	}
	if !IsEmailValid(c.Email) {
		return httperr.ErrBusiness("invalid_customer_email")
	}
	if n := len(c.Phone); n < 10 || n > 15 {
		return httperr.ErrBusiness("invalid_customer_phone")
	}
	return nil
}

func ValidateService(s models.ServiceDetails) error {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Duration) == "" {
		return httperr.ErrBusiness("invalid_service")
	}
	if s.Gender != "men" && s.Gender != "women" {
		return httperr.ErrBusiness("invalid_gender")
	}
	return nil
}
