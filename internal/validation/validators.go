// Package validation holds the shared form validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/dmitrijs2005/creditscore/internal/client/models"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	for tag, fn := range map[string]validator.Func{
		"notblank":         validators.NotBlank,
		"employment":       oneOf(models.Employments),
		"loan_purpose":     oneOf(models.LoanPurposes),
		"phone_usage":      oneOf(models.PhoneUsages),
		"utility_payments": oneOf(models.UtilityPaymentHistories),
	} {
		if err := Validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("failed to register %s validator: %v", tag, err))
		}
	}
}

func oneOf[T ~string](allowed []T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, T(fl.Field().String()))
	}
}

// Struct validates v and flattens field errors into one readable error,
// e.g. "username is required; age must be at least 18".
func Struct(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " is required"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "employment", "loan_purpose", "phone_usage", "utility_payments":
		return fmt.Sprintf("%s %q is not a valid choice", fe.Field(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}
