package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrCustomerNotFound = errors.New("customer not found")
var ErrCreditNotFound = errors.New("credit not found")
var ErrCustomerExists = errors.New("customer already exists")
var ErrCreditCodeExists = errors.New("credit code already exists")

// NotFoundError is raised when a referenced customer id does not exist.
// Its message is part of the observable API contract.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Id %s not found", e.ID)
}

// BusinessError is a client-facing rule violation with a deterministic message.
type BusinessError struct {
	Message string
}

func (e *BusinessError) Error() string {
	return e.Message
}

// FieldViolation is a single violated constraint on a request field.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries every violated field of a request, not just the
// first one.
type ValidationErrors struct {
	Violations []FieldViolation
}

func (e *ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return strings.Join(msgs, "; ")
}
