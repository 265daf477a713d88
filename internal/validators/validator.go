// Package validators wraps go-playground/validator with application-level
// helpers for request payload validation.
//
// Validation rules live on the request structs in the models package as
// `validate` struct tags; this package turns tag violations into compact,
// user-presentable messages.
package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. It is safe for concurrent use
// and caches struct metadata across calls.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates obj against its `validate` struct tags and returns a
// single error summarizing every violated rule, or nil when obj is valid.
//
// The message lists one "<field>: <rule>" fragment per violation, e.g.
// "email: must be a valid email; password: must be at least 8 characters".
func Struct(obj any) error {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fragments := make([]string, 0, len(verrs))
	for _, fieldErr := range verrs {
		fragments = append(fragments, describe(fieldErr))
	}

	return errors.New(strings.Join(fragments, "; "))
}

// describe renders one field violation as a short human-readable fragment.
func describe(fieldErr validator.FieldError) string {
	field := strings.ToLower(fieldErr.Field())

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)
	case "email":
		return fmt.Sprintf("%s: must be a valid email", field)
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("%s: must be at least %s characters", field, fieldErr.Param())
		}
		return fmt.Sprintf("%s: must be at least %s", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s", field, fieldErr.Param())
	default:
		return fmt.Sprintf("%s: failed %s validation", field, fieldErr.Tag())
	}
}
