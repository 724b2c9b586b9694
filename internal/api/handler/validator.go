package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/credibank/credit-system/internal/core/domain"
)

// cpfPattern is the fixed external CPF format: NNN.NNN.NNN-NN.
var cpfPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator, with the credit-domain rules registered.
func NewValidator() *echoValidator {
	v := validator.New()

	// Report fields under their JSON names, matching the wire contract.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("cpf", validateCPF)
	_ = v.RegisterValidation("datefuture", validateDateFuture)

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Every violated field is
// collected and reported, not just the first.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			violations := make([]domain.FieldViolation, 0, len(ve))
			for _, fe := range ve {
				violations = append(violations, domain.FieldViolation{
					Field:   fe.Field(),
					Message: fieldError(fe),
				})
			}
			return &domain.ValidationErrors{Violations: violations}
		}
		return err
	}
	return nil
}

func validateCPF(fl validator.FieldLevel) bool {
	return cpfPattern.MatchString(fl.Field().String())
}

// validateDateFuture accepts a YYYY-MM-DD string strictly after today.
func validateDateFuture(fl validator.FieldLevel) bool {
	d, err := time.Parse(time.DateOnly, fl.Field().String())
	if err != nil {
		return false
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return d.After(today)
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "cpf":
		return field + " must match the format 000.000.000-00"
	case "datefuture":
		return field + " must be a future date in format 2006-01-02"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
