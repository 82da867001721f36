// Package validation checks decoded request bodies against their
// `validate` struct tags and turns failures into 400 API errors.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"go-contacts-api/pkg/apierror"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func instance() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// Struct validates s. A missing required field produces missingMessage;
// any other rule violation produces a field-specific message.
func Struct(s any, missingMessage string) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apierror.BadRequest("invalid request body", "")
	}

	fields := make([]string, 0, len(fieldErrs))
	messages := make([]string, 0, len(fieldErrs))
	missing := false
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field())
		if fe.Tag() == "required" {
			missing = true
			continue
		}
		messages = append(messages, fe.Field()+" "+describe(fe))
	}

	if missing {
		return apierror.BadRequest(missingMessage, strings.Join(fields, ","))
	}
	return apierror.BadRequest(strings.Join(messages, "; "), strings.Join(fields, ","))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "email":
		return "must be a valid email address"
	case "min":
		return "must not be empty"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "is invalid"
	}
}
