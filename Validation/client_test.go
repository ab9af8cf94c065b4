package Validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validClientForm() ClientForm {
	return ClientForm{
		FirstName:   "Maria",
		LastName:    "Papadopoulou",
		Email:       "maria@example.com",
		GdprConsent: true,
	}
}

func TestValidateClientValid(t *testing.T) {
	violations := ValidateClient(validClientForm(), false)
	assert.True(t, violations.OK())

	// Re-running on valid data never produces violations
	violations = ValidateClient(validClientForm(), false)
	assert.Empty(t, violations)
}

func TestValidateClientRequiredNames(t *testing.T) {
	form := validClientForm()
	form.FirstName = ""
	form.LastName = "   "

	violations := ValidateClient(form, false)
	assert.Equal(t, MsgRequired, violations["first_name"])
	assert.Equal(t, MsgRequired, violations["last_name"])
}

func TestValidateClientReportsAllViolationsTogether(t *testing.T) {
	form := ClientForm{Email: "not-an-email"}

	violations := ValidateClient(form, false)
	assert.Len(t, violations, 4)
	assert.Contains(t, violations, "first_name")
	assert.Contains(t, violations, "last_name")
	assert.Contains(t, violations, "email")
	assert.Contains(t, violations, "gdpr_consent")
}

func TestValidateClientEmail(t *testing.T) {
	cases := []struct {
		email string
		valid bool
	}{
		{"", true},
		{"maria@example.com", true},
		{"m.p+tag@praktiki.gr", true},
		{"no-at-sign", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"missing@tld", false},
		{"@example.com", false},
		{"maria@", false},
	}

	for _, tc := range cases {
		form := validClientForm()
		form.Email = tc.email
		violations := ValidateClient(form, false)
		if tc.valid {
			assert.NotContains(t, violations, "email", "email %q should pass", tc.email)
		} else {
			assert.Equal(t, MsgInvalidEmail, violations["email"], "email %q should fail", tc.email)
		}
	}
}

func TestValidateClientConsentOnlyOnCreate(t *testing.T) {
	form := validClientForm()
	form.GdprConsent = false

	violations := ValidateClient(form, false)
	assert.Equal(t, MsgConsentRequired, violations["gdpr_consent"])

	violations = ValidateClient(form, true)
	assert.True(t, violations.OK())
}
