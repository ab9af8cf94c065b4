package Validation

import (
	"regexp"
	"strings"
)

// ClientForm is the creatable/editable field set of a client record.
type ClientForm struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DateOfBirth string `json:"date_of_birth"`
	AddressLine string `json:"address_line"`
	Condition   string `json:"condition"`
	Notes       string `json:"notes"`
	GdprConsent bool   `json:"gdpr_consent"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateClient checks a client form. Consent is demanded only when
// registering a new client, never when editing an existing one.
func ValidateClient(form ClientForm, editing bool) Violations {
	violations := Violations{}

	if strings.TrimSpace(form.FirstName) == "" {
		violations["first_name"] = MsgRequired
	}
	if strings.TrimSpace(form.LastName) == "" {
		violations["last_name"] = MsgRequired
	}
	if form.Email != "" && !emailPattern.MatchString(form.Email) {
		violations["email"] = MsgInvalidEmail
	}
	if !editing && !form.GdprConsent {
		violations["gdpr_consent"] = MsgConsentRequired
	}

	return violations
}
