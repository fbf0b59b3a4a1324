// Package validation wraps go-playground/validator with the rules shared by
// request bodies and merge-patch bodies.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/nexushealth/hms-api/internal/core/domain"
	"github.com/nexushealth/hms-api/pkg/patch"
)

type Validator struct {
	v *validator.Validate
}

// New returns a Validator that reports JSON field names and understands
// patch.Value / patch.Nullable fields (absent and null fields are skipped by omitempty).
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(patchValue,
		patch.Value[string]{}, patch.Value[int]{}, patch.Value[float64]{}, patch.Value[bool]{},
		patch.Nullable[string]{}, patch.Nullable[int]{}, patch.Nullable[float64]{}, patch.Nullable[[]string]{},
	)
	return &Validator{v: v}
}

func patchValue(field reflect.Value) any {
	if pv, ok := field.Interface().(patch.Validatable); ok {
		return pv.ValidationValue()
	}
	return nil
}

// Validate returns a *domain.ValidationError listing every failing field.
func (val *Validator) Validate(i any) error {
	err := val.v.Struct(i)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		msgs := make([]string, 0, len(ve))
		for _, fe := range ve {
			msgs = append(msgs, fieldError(fe))
		}
		return &domain.ValidationError{Reason: strings.Join(msgs, "; ")}
	}
	return fmt.Errorf("validate: %w", err)
}

// fieldError converts a single FieldError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
