package service

import (
	"errors"
	"testing"
	"time"

	"dashly/internal/domain"
)

func validSignupRequest() SignupRequest {
	return SignupRequest{
		Email:       "user@example.com",
		Password:    "Longenough1!",
		AccountType: "individual",
		DateOfBirth: "1990-04-12",
		AcceptTerms: true,
	}
}

func TestValidateSignup_Success(t *testing.T) {
	input, err := ValidateSignup(validSignupRequest())
	if err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
	if input.Email != "user@example.com" {
		t.Fatalf("unexpected email: %s", input.Email)
	}
	if input.AccountType != domain.AccountTypeIndividual {
		t.Fatalf("unexpected account type: %s", input.AccountType)
	}
	want := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	if !input.DateOfBirth.Equal(want) {
		t.Fatalf("expected dob %v, got %v", want, input.DateOfBirth)
	}
}

func TestValidateSignup_ISOTimestampDOB(t *testing.T) {
	req := validSignupRequest()
	req.DateOfBirth = "1990-04-12T00:00:00.000Z"
	if _, err := ValidateSignup(req); err != nil {
		t.Fatalf("expected ISO timestamp dob accepted, got %v", err)
	}
}

func TestValidateSignup_Passwords(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantOK   bool
	}{
		{"too short", "short1!", false},
		{"no special char", "longenough1", false},
		{"no uppercase", "longenough1!", false},
		{"valid", "Longenough1!", true},
		{"valid after trimming", "  Longenough1!  ", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignupRequest()
			req.Password = tc.password
			_, err := ValidateSignup(req)
			if tc.wantOK && err != nil {
				t.Fatalf("expected password accepted, got %v", err)
			}
			if !tc.wantOK {
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("expected ValidationError, got %v", err)
				}
			}
		})
	}
}

func TestValidateSignup_Email(t *testing.T) {
	for _, email := range []string{"", "   ", "no-at-sign.example.com"} {
		req := validSignupRequest()
		req.Email = email
		if _, err := ValidateSignup(req); err == nil {
			t.Fatalf("expected email %q rejected", email)
		}
	}
}

func TestValidateSignup_InvalidDOB(t *testing.T) {
	req := validSignupRequest()
	req.DateOfBirth = "not-a-date"
	var validationErr *ValidationError
	_, err := ValidateSignup(req)
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError for bad dob, got %v", err)
	}
}

func TestValidateSignup_TermsNotAccepted(t *testing.T) {
	req := validSignupRequest()
	req.AcceptTerms = false
	if _, err := ValidateSignup(req); err == nil {
		t.Fatalf("expected rejection when terms not accepted")
	}
}

func TestValidateSignup_UnknownAccountType(t *testing.T) {
	req := validSignupRequest()
	req.AccountType = "partnership"
	if _, err := ValidateSignup(req); err == nil {
		t.Fatalf("expected rejection of unknown account type")
	}
}

func TestValidateSignup_CompanyRules(t *testing.T) {
	t.Run("missing company name", func(t *testing.T) {
		req := validSignupRequest()
		req.AccountType = "company"
		req.NumberOfEmployees = 5
		if _, err := ValidateSignup(req); err == nil {
			t.Fatalf("expected rejection without company name")
		}
	})

	t.Run("employees below one", func(t *testing.T) {
		req := validSignupRequest()
		req.AccountType = "company"
		req.CompanyName = "Acme"
		req.NumberOfEmployees = 0
		if _, err := ValidateSignup(req); err == nil {
			t.Fatalf("expected rejection with zero employees")
		}
	})

	t.Run("valid company", func(t *testing.T) {
		req := validSignupRequest()
		req.AccountType = "company"
		req.CompanyName = "Acme"
		req.NumberOfEmployees = 12
		input, err := ValidateSignup(req)
		if err != nil {
			t.Fatalf("expected valid company payload, got %v", err)
		}
		if input.CompanyName != "Acme" || input.NumberOfEmployees != 12 {
			t.Fatalf("unexpected company fields: %+v", input)
		}
	})

	t.Run("individual ignores company fields", func(t *testing.T) {
		req := validSignupRequest()
		req.CompanyName = "Acme"
		req.NumberOfEmployees = -3
		input, err := ValidateSignup(req)
		if err != nil {
			t.Fatalf("expected individual payload accepted, got %v", err)
		}
		if input.CompanyName != "" || input.NumberOfEmployees != 0 {
			t.Fatalf("expected company fields zeroed, got %+v", input)
		}
	})
}
