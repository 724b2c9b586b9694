package handler

// --- Request types ---

type createCustomerRequest struct {
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName"  validate:"required"`
	CPF       string   `json:"cpf"       validate:"required,cpf"`
	Email     string   `json:"email"     validate:"required,email"`
	Password  string   `json:"password"  validate:"required"`
	ZipCode   string   `json:"zipCode"   validate:"required"`
	Street    string   `json:"street"    validate:"required"`
	Income    *float64 `json:"income"    validate:"required,gte=0"`
}

type updateCustomerRequest struct {
	FirstName string   `json:"firstName" validate:"required"`
	LastName  string   `json:"lastName"  validate:"required"`
	Income    *float64 `json:"income"    validate:"required,gte=0"`
	ZipCode   string   `json:"zipCode"   validate:"required"`
	Street    string   `json:"street"    validate:"required"`
}

// --- Response types ---

// customerResponse is the externally-safe customer view. It never carries the
// password in any form.
type customerResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	CPF       string  `json:"cpf"`
	Email     string  `json:"email"`
	Income    float64 `json:"income"`
	ZipCode   string  `json:"zipCode"`
	Street    string  `json:"street"`
}
