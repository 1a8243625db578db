package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// BindingErrorDetails flattens gin binding failures into a field -> reason
// map for the error envelope. Non-validator errors get a single generic entry.
func BindingErrorDetails(err error) map[string]string {
	details := map[string]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		details["body"] = "malformed request body"
		return details
	}

	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			details[fe.Field()] = "is required"
		case "email":
			details[fe.Field()] = "must be a valid email address"
		case "min":
			details[fe.Field()] = "is too short (min " + fe.Param() + ")"
		case "max":
			details[fe.Field()] = "is too long (max " + fe.Param() + ")"
		case "gt":
			details[fe.Field()] = "must be greater than " + fe.Param()
		case "datetime":
			details[fe.Field()] = "must match format " + fe.Param()
		default:
			details[fe.Field()] = "is invalid"
		}
	}
	return details
}
