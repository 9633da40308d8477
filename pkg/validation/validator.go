package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// pwd carries the minimum credential length used by the views
	v.RegisterAlias("pwd", "min=8")
	return v
}

// Struct validates the given struct and returns a single error describing every
// failed field, suitable for printing as one console line.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	details := ToDetails(err)
	if len(details) == 0 {
		return err
	}
	fields := make([]string, 0, len(details))
	for f := range details {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+" "+details[f])
	}
	return errors.New(strings.Join(parts, "; "))
}

// ToDetails converts validator.v10 errors into a map[field]message with stable,
// human-friendly texts.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"input": "is invalid"}
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = "is required"
		case "email":
			out[field] = "must be a valid email address"
		case "min", "pwd":
			out[field] = fmt.Sprintf("must be at least %s characters", fe.Param())
		case "max":
			out[field] = fmt.Sprintf("must be at most %s characters", fe.Param())
		case "gte":
			out[field] = fmt.Sprintf("must be %s or greater", fe.Param())
		case "gt":
			out[field] = fmt.Sprintf("must be greater than %s", fe.Param())
		default:
			out[field] = "is invalid"
		}
	}
	return out
}
