package domain

import "time"

// AccountType distingue cuentas personales de cuentas de empresa.
type AccountType string

const (
	AccountTypeIndividual AccountType = "individual"
	AccountTypeCompany    AccountType = "company"
)

// Valid indica si el tipo de cuenta es uno de los soportados.
func (t AccountType) Valid() bool {
	return t == AccountTypeIndividual || t == AccountTypeCompany
}

type User struct {
	ID                string      `json:"id"`
	Email             string      `json:"email"`
	PasswordHash      string      `json:"-"`
	AccountType       AccountType `json:"account_type"`
	CompanyName       string      `json:"company_name,omitempty"`
	NumberOfEmployees int         `json:"number_of_employees,omitempty"`
	DateOfBirth       time.Time   `json:"date_of_birth"`
	AcceptedTerms     bool        `json:"accepted_terms"`
	CreatedAt         time.Time   `json:"created_at"`
}
