package Validation

// PaymentForm is the creatable field set of a payment.
type PaymentForm struct {
	ClientID  uint    `json:"client_id"`
	SessionID *uint   `json:"session_id"`
	Amount    float64 `json:"amount"`
	Method    string  `json:"method"`
	Notes     string  `json:"notes"`
}

var paymentMethods = map[string]struct{}{
	"cash":  {},
	"card":  {},
	"bank":  {},
	"other": {},
}

func ValidatePayment(form PaymentForm) Violations {
	violations := Violations{}

	if form.ClientID == 0 {
		violations["client_id"] = MsgRequired
	}
	if form.Amount <= 0 {
		violations["amount"] = MsgAmountPositive
	}
	if _, ok := paymentMethods[form.Method]; !ok {
		violations["method"] = MsgUnknownMethod
	}

	return violations
}
