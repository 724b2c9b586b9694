package ports

import (
	"context"
	"time"

	"github.com/credibank/credit-system/internal/core/domain"
)

// CreateCreditInput carries all data needed to apply for a credit. The owning
// customer is referenced by id and resolved by the service, never embedded.
type CreateCreditInput struct {
	CreditValue          float64
	DayFirstInstallment  time.Time
	NumberOfInstallments int
	CustomerID           string
}

// CreditService defines use-case operations for credits.
type CreditService interface {
	// Save resolves the owning customer, assigns a unique credit code and
	// persists the credit with status IN_PROGRESS.
	Save(ctx context.Context, input CreateCreditInput) (*domain.Credit, error)
	FindAllByCustomer(ctx context.Context, customerID string) ([]*domain.Credit, error)
	// FindByCreditCode checks existence first, then ownership; each failure
	// carries its own distinct *domain.BusinessError message.
	FindByCreditCode(ctx context.Context, customerID, creditCode string) (*domain.Credit, error)
}
