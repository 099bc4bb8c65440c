// Package validator adapts go-playground/validator to echo's Validator.
package validator

import (
	"fmt"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"

	"foodgram/internal/domain/entity"
	domainerrors "foodgram/internal/domain/errors"
	"foodgram/internal/errors"
)

// RequestValidator validates bound request DTOs.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a RequestValidator with the foodgram specific tags registered:
// hexcolor3or6, slug and username.
func New() *RequestValidator {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("hexcolor3or6", func(fl playground.FieldLevel) bool {
		return entity.ValidColor(fl.Field().String())
	})
	_ = v.RegisterValidation("slug", func(fl playground.FieldLevel) bool {
		return entity.ValidSlug(fl.Field().String())
	})
	_ = v.RegisterValidation("username", func(fl playground.FieldLevel) bool {
		return entity.ValidUsername(fl.Field().String())
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator. Field errors are reported as a
// validation AppError listing every failed field.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "failed to validate request")
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

// jsonFieldName reports fields by their JSON name, as clients see them.
func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func describe(fe playground.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "hexcolor3or6":
		return field + " must be a hex color such as #E26C2D"
	case "slug":
		return field + " may contain only letters, digits, '-' and '_'"
	case "username":
		return field + " may contain only letters, digits and @/./+/-/_"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
