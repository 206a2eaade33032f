// internal/utils/validator.go
package utils

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/blendsoft/pos-terminal/internal/apperrors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("document", validateDocument)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateDocument accepts positive numeric identifiers of at least 7 digits.
func validateDocument(fl validator.FieldLevel) bool {
	document := fl.Field().Int()
	if document <= 0 {
		return false
	}
	return len(strconv.FormatInt(document, 10)) >= 7
}

func GetValidationErrors(err error) []apperrors.FieldError {
	var fieldErrors []apperrors.FieldError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			fieldErrors = append(fieldErrors, apperrors.FieldError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return fieldErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "document":
		return "Document must be a number of at least 7 digits"
	default:
		return e.Field() + " is invalid"
	}
}
