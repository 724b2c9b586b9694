package domain

import "time"

// CreditStatus represents the lifecycle state of a credit.
type CreditStatus string

const (
	StatusInProgress CreditStatus = "IN_PROGRESS"
	StatusApproved   CreditStatus = "APPROVED"
	StatusRejected   CreditStatus = "REJECTED"
)

// MaxInstallments bounds NumberOfInstallments on any credit.
const MaxInstallments = 48

// Credit is a line of credit granted to exactly one customer. CreditCode is
// assigned at creation, unique, and never reused; CustomerID is set once and
// immutable thereafter. CustomerEmail and CustomerIncome are denormalized from
// the owning customer at creation time for view rendering.
type Credit struct {
	ID                   string       `json:"id"`
	CreditCode           string       `json:"credit_code"`
	CreditValue          float64      `json:"credit_value"`
	DayFirstInstallment  time.Time    `json:"day_first_installment"`
	NumberOfInstallments int          `json:"number_of_installments"`
	Status               CreditStatus `json:"status"`
	CustomerID           string       `json:"customer_id"`
	CustomerEmail        string       `json:"customer_email,omitempty"`
	CustomerIncome       *float64     `json:"customer_income,omitempty"`
	CreatedAt            time.Time    `json:"created_at"`
}
