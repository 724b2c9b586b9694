package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/credibank/credit-system/internal/core/domain"
	"github.com/credibank/credit-system/internal/core/ports"
)

// maxFirstInstallmentMonths bounds how far out the first installment may be.
const maxFirstInstallmentMonths = 3

// CreditService implements credit creation and the scoped lookup operations.
type CreditService struct {
	repo      ports.CreditRepository
	customers ports.CustomerService
	cache     ports.CreditCache // optional, may be nil
	logger    zerolog.Logger
}

func NewCreditService(repo ports.CreditRepository, customers ports.CustomerService, cache ports.CreditCache, logger zerolog.Logger) *CreditService {
	return &CreditService{repo: repo, customers: customers, cache: cache, logger: logger}
}

// Save creates a credit for an existing customer. The customer is resolved by
// id through CustomerService; an absent customer fails with its
// *domain.NotFoundError. A first installment date more than three months out
// is rejected with the "Invalid Date" business error.
func (s *CreditService) Save(ctx context.Context, input ports.CreateCreditInput) (*domain.Credit, error) {
	customer, err := s.customers.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	if input.DayFirstInstallment.After(time.Now().AddDate(0, maxFirstInstallmentMonths, 0)) {
		return nil, &domain.BusinessError{Message: "Invalid Date"}
	}

	income := customer.Income
	credit := &domain.Credit{
		CreditCode:           uuid.NewString(),
		CreditValue:          input.CreditValue,
		DayFirstInstallment:  input.DayFirstInstallment,
		NumberOfInstallments: input.NumberOfInstallments,
		Status:               domain.StatusInProgress,
		CustomerID:           customer.ID,
		CustomerEmail:        customer.Email,
		CustomerIncome:       &income,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, credit); err != nil {
		s.logger.Error().Err(err).Str("customer_id", customer.ID).Msg("failed to create credit")
		return nil, err
	}

	s.logger.Info().
		Str("credit_code", credit.CreditCode).
		Str("customer_id", customer.ID).
		Msg("credit created")

	return credit, nil
}

// FindAllByCustomer returns every credit owned by the customer in creation
// order. A customer with no credits yields an empty slice.
func (s *CreditService) FindAllByCustomer(ctx context.Context, customerID string) ([]*domain.Credit, error) {
	return s.repo.FindAllByCustomerID(ctx, customerID)
}

// FindByCreditCode looks up a credit by code scoped to a customer. The
// existence check runs first and fails with the code-naming business error;
// the ownership check runs second and fails with its own distinct message.
func (s *CreditService) FindByCreditCode(ctx context.Context, customerID, creditCode string) (*domain.Credit, error) {
	credit := s.cachedCredit(ctx, creditCode)
	if credit == nil {
		var err error
		credit, err = s.repo.FindByCreditCode(ctx, creditCode)
		if err != nil {
			if errors.Is(err, domain.ErrCreditNotFound) {
				return nil, &domain.BusinessError{Message: fmt.Sprintf("Creditcode %s not found", creditCode)}
			}
			return nil, err
		}
		if s.cache != nil {
			if err := s.cache.Set(ctx, credit); err != nil {
				s.logger.Warn().Err(err).Str("credit_code", creditCode).Msg("failed to cache credit")
			}
		}
	}

	if credit.CustomerID != customerID {
		return nil, &domain.BusinessError{Message: "Contact admin"}
	}
	return credit, nil
}

func (s *CreditService) cachedCredit(ctx context.Context, creditCode string) *domain.Credit {
	if s.cache == nil {
		return nil
	}
	credit, err := s.cache.Get(ctx, creditCode)
	if err != nil {
		s.logger.Warn().Err(err).Str("credit_code", creditCode).Msg("credit cache lookup failed")
		return nil
	}
	return credit
}
