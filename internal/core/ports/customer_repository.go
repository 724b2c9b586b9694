package ports

import (
	"context"

	"github.com/credibank/credit-system/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// Create inserts the customer and returns it with its generated id.
	// Returns domain.ErrCustomerExists on a duplicate cpf or email.
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	// FindByID retrieves a customer by id, or domain.ErrCustomerNotFound.
	FindByID(ctx context.Context, id string) (*domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
