package service

import (
	"strings"
	"time"

	"dashly/internal/domain"
)

// SignupRequest es el payload crudo de alta de cuenta.
type SignupRequest struct {
	Email             string
	Password          string
	AccountType       string
	CompanyName       string
	NumberOfEmployees int
	DateOfBirth       string
	AcceptTerms       bool
}

// SignupInput es el registro normalizado, listo para persistir.
type SignupInput struct {
	Email             string
	Password          string
	AccountType       domain.AccountType
	CompanyName       string
	NumberOfEmployees int
	DateOfBirth       time.Time
	AcceptTerms       bool
}

// ValidationError describe un payload de alta inválido con un mensaje
// apto para mostrar al usuario.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const passwordSpecialChars = "!@#$%^&*"

// ValidateSignup valida el payload de alta sin efectos secundarios.
// Devuelve el registro normalizado o un *ValidationError.
func ValidateSignup(req SignupRequest) (SignupInput, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return SignupInput{}, &ValidationError{Message: "a valid email address is required"}
	}

	password := strings.TrimSpace(req.Password)
	if !validPassword(password) {
		return SignupInput{}, &ValidationError{
			Message: "password must be at least 8 characters long, contain at least 1 special character and 1 uppercase letter",
		}
	}

	dob, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return SignupInput{}, &ValidationError{Message: "date of birth must be a valid date"}
	}

	if !req.AcceptTerms {
		return SignupInput{}, &ValidationError{Message: "terms and conditions must be accepted"}
	}

	accountType := domain.AccountType(strings.TrimSpace(req.AccountType))
	if !accountType.Valid() {
		return SignupInput{}, &ValidationError{Message: "account type must be individual or company"}
	}

	input := SignupInput{
		Email:       email,
		Password:    password,
		AccountType: accountType,
		DateOfBirth: dob,
		AcceptTerms: req.AcceptTerms,
	}

	if accountType == domain.AccountTypeCompany {
		companyName := strings.TrimSpace(req.CompanyName)
		if companyName == "" || req.NumberOfEmployees < 1 {
			return SignupInput{}, &ValidationError{
				Message: "company name and number of employees are required for company accounts",
			}
		}
		input.CompanyName = companyName
		input.NumberOfEmployees = req.NumberOfEmployees
	}

	return input, nil
}

func validPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case strings.ContainsRune(passwordSpecialChars, r):
			hasSpecial = true
		}
	}
	return hasUpper && hasSpecial
}

// parseDateOfBirth acepta fecha simple o timestamp ISO completo; el
// cliente original enviaba Date.toISOString().
func parseDateOfBirth(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
