package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Violations is populated only for validation failures.
type errorResponse struct {
	Error      string           `json:"error"`
	Violations []fieldViolation `json:"violations,omitempty"`
}

type fieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// --- Request types ---

type createCreditRequest struct {
	CreditValue           *float64 `json:"creditValue"           validate:"required,gt=0"`
	DayFirstOfInstallment string   `json:"dayFirstOfInstallment" validate:"required,datefuture"`
	NumberOfInstallments  *int     `json:"numberOfInstallments"  validate:"required,min=1,max=48"`
	CustomerID            string   `json:"customerId"            validate:"required"`
}

// --- Response types ---

// creditResponse is the full credit view. Customer email and income appear
// only when the customer relation was loaded; cpf, address and password are
// never exposed.
type creditResponse struct {
	CreditCode            string   `json:"creditCode"`
	CreditValue           float64  `json:"creditValue"`
	DayFirstOfInstallment string   `json:"dayFirstOfInstallment"`
	NumberOfInstallments  int      `json:"numberOfInstallments"`
	Status                string   `json:"status"`
	EmailCustomer         string   `json:"emailCustomer,omitempty"`
	IncomeCustomer        *float64 `json:"incomeCustomer,omitempty"`
}

// creditListItemResponse is the lightweight item used in list-by-customer
// responses.
type creditListItemResponse struct {
	CreditCode           string  `json:"creditCode"`
	CreditValue          float64 `json:"creditValue"`
	NumberOfInstallments int     `json:"numberOfInstallments"`
}
