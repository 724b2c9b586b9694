package ports

import (
	"context"

	"github.com/credibank/credit-system/internal/core/domain"
)

// CreateCustomerInput carries all data needed to register a new customer.
type CreateCustomerInput struct {
	FirstName string
	LastName  string
	CPF       string
	Email     string
	Password  string
	ZipCode   string
	Street    string
	Income    float64
}

// UpdateCustomerInput carries the mutable profile fields. CPF, email and
// password are not updatable.
type UpdateCustomerInput struct {
	FirstName string
	LastName  string
	Income    float64
	ZipCode   string
	Street    string
}

// CustomerService defines use-case operations for customers.
type CustomerService interface {
	Save(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error)
	// FindByID fails with *domain.NotFoundError when the id is absent.
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, id string, input UpdateCustomerInput) (*domain.Customer, error)
	// Delete removes the customer and all credits it owns.
	Delete(ctx context.Context, id string) error
}
