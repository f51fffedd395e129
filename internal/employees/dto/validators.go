package dto

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern      = regexp.MustCompile(`^\+?[0-9][0-9\s\-().]{4,24}$`)
	salaryBandPattern = regexp.MustCompile(`^[A-Z][0-9]{0,2}$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for blank tag names
	_ = v.RegisterValidation("phone_number", validatePhoneNumber)
	_ = v.RegisterValidation("salary_band", validateSalaryBand)
	return v
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// validateSalaryBand accepts band codes like "B", "C2" or "A10".
func validateSalaryBand(fl validator.FieldLevel) bool {
	return salaryBandPattern.MatchString(fl.Field().String())
}

// ValidateBody validates a request body against its validate tags and
// returns user-facing messages for every failed field.
func ValidateBody(s interface{}) []string {
	var messages []string

	if err := validate.Struct(s); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range fieldErrors {
				messages = append(messages, formatValidationError(fe))
			}
		} else {
			messages = append(messages, err.Error())
		}
	}

	return messages
}

func formatValidationError(err validator.FieldError) string {
	switch err.Tag() {
	case "phone_number":
		return fmt.Sprintf("%s must be a valid phone number", err.Field())
	case "salary_band":
		return fmt.Sprintf("%s must be a band code such as B or C2", err.Field())
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}
