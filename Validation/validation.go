// Package Validation holds the pure field validators run before any write.
// Validators do no I/O and report every violation at once, keyed by field.
package Validation

// Violations maps a field name to a human-readable reason. An empty map
// means the record is valid.
type Violations map[string]string

func (v Violations) OK() bool {
	return len(v) == 0
}

const (
	MsgRequired        = "This field is required"
	MsgInvalidEmail    = "Invalid email address"
	MsgConsentRequired = "Consent is required to register a new client"
	MsgEndAfterStart   = "End time must be after start time"
	MsgInvalidTime     = "Invalid time"
	MsgAmountPositive  = "Amount must be greater than zero"
	MsgUnknownMethod   = "Unknown payment method"
)
