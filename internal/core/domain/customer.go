package domain

import "time"

// Address is the customer's registered address.
type Address struct {
	ZipCode string `json:"zip_code"`
	Street  string `json:"street"`
}

// Customer is the owner of credits. CPF and Email are unique across all
// customers; uniqueness is enforced by the persistence layer.
type Customer struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	CPF          string    `json:"cpf"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Address      Address   `json:"address"`
	Income       float64   `json:"income"`
	CreatedAt    time.Time `json:"created_at"`
}
