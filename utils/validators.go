package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("dateonly", ValidateDateOnlyRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("dateonly", ValidateDateOnlyRule)
	}
}

func ValidateDateOnlyRule(fl validator.FieldLevel) bool {
	return ValidateDateOnly(fl.Field().String())
}

// ValidateDateOnly accepts a plain YYYY-MM-DD calendar day with no
// time-of-day component.
func ValidateDateOnly(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}

// ParseDay parses a YYYY-MM-DD value to midnight UTC of that day.
func ParseDay(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}
