package handler

import (
	"time"

	"github.com/credibank/credit-system/internal/core/domain"
	"github.com/credibank/credit-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateCreditInput(req createCreditRequest) ports.CreateCreditInput {
	// The date was already validated by the datefuture rule.
	day, _ := time.Parse(time.DateOnly, req.DayFirstOfInstallment)
	return ports.CreateCreditInput{
		CreditValue:          *req.CreditValue,
		DayFirstInstallment:  day,
		NumberOfInstallments: *req.NumberOfInstallments,
		CustomerID:           req.CustomerID,
	}
}

// --- Entity → HTTP response ---

func toCreditResponse(c *domain.Credit) creditResponse {
	return creditResponse{
		CreditCode:            c.CreditCode,
		CreditValue:           c.CreditValue,
		DayFirstOfInstallment: c.DayFirstInstallment.Format(time.DateOnly),
		NumberOfInstallments:  c.NumberOfInstallments,
		Status:                string(c.Status),
		EmailCustomer:         c.CustomerEmail,
		IncomeCustomer:        c.CustomerIncome,
	}
}

func toCreditListResponse(credits []*domain.Credit) []creditListItemResponse {
	items := make([]creditListItemResponse, len(credits))
	for i, c := range credits {
		items[i] = creditListItemResponse{
			CreditCode:           c.CreditCode,
			CreditValue:          c.CreditValue,
			NumberOfInstallments: c.NumberOfInstallments,
		}
	}
	return items
}
