package handler

import (
	"github.com/credibank/credit-system/internal/core/domain"
	"github.com/credibank/credit-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateCustomerInput(req createCustomerRequest) ports.CreateCustomerInput {
	return ports.CreateCustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		CPF:       req.CPF,
		Email:     req.Email,
		Password:  req.Password,
		ZipCode:   req.ZipCode,
		Street:    req.Street,
		Income:    *req.Income,
	}
}

func toUpdateCustomerInput(req updateCustomerRequest) ports.UpdateCustomerInput {
	return ports.UpdateCustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Income:    *req.Income,
		ZipCode:   req.ZipCode,
		Street:    req.Street,
	}
}

// --- Entity → HTTP response ---

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		CPF:       c.CPF,
		Email:     c.Email,
		Income:    c.Income,
		ZipCode:   c.Address.ZipCode,
		Street:    c.Address.Street,
	}
}
