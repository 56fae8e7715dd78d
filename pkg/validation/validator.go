package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Init configures the global validator used by Gin's binding.
// Field names in errors come from the form tag, which is what the
// browser-facing templates use.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// FailedFields extracts the names of the fields that failed validation.
// The signup flow reports these back verbatim ("Please provide a correct
// value for: name, email"). A non-validator error yields a nil slice.
func FailedFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}

// ToDetails converts validation errors into a map[field]message suitable
// for logging and error pages.
func ToDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		if err != nil {
			return map[string]string{"payload": "invalid payload"}
		}
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = formatFieldError(fe)
	}
	return out
}

func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "alphanum":
		return "must contain alphanumeric characters only"
	case "max":
		if fe.Param() != "" {
			return "must be at most " + fe.Param() + " characters long"
		}
		return "too large"
	case "min":
		if fe.Param() != "" {
			return "must be at least " + fe.Param() + " characters long"
		}
		return "too small"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "validation failed for '" + fe.Tag() + "'"
	}
}
