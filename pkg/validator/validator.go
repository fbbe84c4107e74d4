package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var (
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
	gstinRegex = regexp.MustCompile(`^[0-9A-Z]{15}$`)
)

var validate = validator.New()

func init() {
	// Register custom validation for UUID
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})

	// Indian 10-digit phone number
	validate.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
		return phoneRegex.MatchString(fl.Field().String())
	})

	// 15-character GSTIN code
	validate.RegisterValidation("gstin", func(fl validator.FieldLevel) bool {
		return gstinRegex.MatchString(fl.Field().String())
	})
}

func ValidateStruct(data interface{}) []*ErrorResponse {
	var errors []*ErrorResponse
	err := validate.Struct(data)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.FailedField = err.StructNamespace()
			element.Tag = err.Tag()
			element.Value = err.Param()
			errors = append(errors, &element)
		}
	}
	return errors
}

// IsPhone reports whether s is a valid 10-digit phone number
func IsPhone(s string) bool {
	return validate.Var(s, "phone10") == nil
}

// IsGSTIN reports whether s is a valid 15-character GST code
func IsGSTIN(s string) bool {
	return validate.Var(s, "gstin") == nil
}

// IsEmail reports whether s is a well-formed email address
func IsEmail(s string) bool {
	return validate.Var(s, "email") == nil
}
