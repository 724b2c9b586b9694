package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/credibank/credit-system/internal/core/domain"
	"github.com/credibank/credit-system/internal/core/ports"
)

// CustomerService implements customer registration, lookup, profile update
// and deletion.
type CustomerService struct {
	repo    ports.CustomerRepository
	credits ports.CreditRepository
	logger  zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, credits ports.CreditRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, credits: credits, logger: logger}
}

// Save hashes the password and persists the customer. The plaintext password
// is never stored or logged.
func (s *CustomerService) Save(ctx context.Context, input ports.CreateCustomerInput) (*domain.Customer, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	customer := &domain.Customer{
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CPF:          input.CPF,
		Email:        input.Email,
		PasswordHash: string(hash),
		Address: domain.Address{
			ZipCode: input.ZipCode,
			Street:  input.Street,
		},
		Income:    input.Income,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, customer)
	if err != nil {
		if !errors.Is(err, domain.ErrCustomerExists) {
			s.logger.Error().Err(err).Msg("failed to create customer")
		}
		return nil, err
	}

	s.logger.Info().Str("customer_id", created.ID).Msg("customer created")
	return created, nil
}

// FindByID resolves a customer by id. An absent id fails with
// *domain.NotFoundError carrying the "Id {id} not found" message.
func (s *CustomerService) FindByID(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, &domain.NotFoundError{ID: id}
		}
		return nil, err
	}
	return customer, nil
}

// Update merges the mutable profile fields into the stored customer.
func (s *CustomerService) Update(ctx context.Context, id string, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	customer, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Income = input.Income
	customer.Address.ZipCode = input.ZipCode
	customer.Address.Street = input.Street

	updated, err := s.repo.Update(ctx, customer)
	if err != nil {
		s.logger.Error().Err(err).Str("customer_id", id).Msg("failed to update customer")
		return nil, err
	}

	s.logger.Info().Str("customer_id", id).Msg("customer updated")
	return updated, nil
}

// Delete removes the customer and cascades to every credit it owns.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if _, err := s.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.credits.DeleteAllByCustomerID(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("customer_id", id).Msg("failed to delete customer credits")
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("customer_id", id).Msg("failed to delete customer")
		return err
	}

	s.logger.Info().Str("customer_id", id).Msg("customer deleted")
	return nil
}
