package ports

import (
	"context"

	"github.com/credibank/credit-system/internal/core/domain"
)

// CreditRepository defines persistence operations for credits.
type CreditRepository interface {
	// Create inserts a new credit. Returns domain.ErrCreditCodeExists when the
	// credit code is already taken.
	Create(ctx context.Context, credit *domain.Credit) error
	// FindByCreditCode retrieves a credit by its code regardless of owner, or
	// domain.ErrCreditNotFound.
	FindByCreditCode(ctx context.Context, creditCode string) (*domain.Credit, error)
	// FindAllByCustomerID returns the customer's credits in creation order.
	// A customer with no credits yields an empty slice, not an error.
	FindAllByCustomerID(ctx context.Context, customerID string) ([]*domain.Credit, error)
	DeleteAllByCustomerID(ctx context.Context, customerID string) error
}

// CreditCache is an optional read cache on the credit-by-code lookup path.
// Implementations must treat a miss as (nil, nil).
type CreditCache interface {
	Get(ctx context.Context, creditCode string) (*domain.Credit, error)
	Set(ctx context.Context, credit *domain.Credit) error
}
