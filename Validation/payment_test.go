package Validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePayment(t *testing.T) {
	form := PaymentForm{ClientID: 3, Amount: 45.50, Method: "cash"}
	assert.True(t, ValidatePayment(form).OK())

	form.Amount = 0
	violations := ValidatePayment(form)
	assert.Equal(t, MsgAmountPositive, violations["amount"])

	form.Amount = -10
	violations = ValidatePayment(form)
	assert.Equal(t, MsgAmountPositive, violations["amount"])
}

func TestValidatePaymentMethod(t *testing.T) {
	for _, method := range []string{"cash", "card", "bank", "other"} {
		form := PaymentForm{ClientID: 1, Amount: 10, Method: method}
		assert.True(t, ValidatePayment(form).OK(), "method %q should pass", method)
	}

	form := PaymentForm{ClientID: 1, Amount: 10, Method: "iou"}
	violations := ValidatePayment(form)
	assert.Equal(t, MsgUnknownMethod, violations["method"])

	form.Method = ""
	violations = ValidatePayment(form)
	assert.Equal(t, MsgUnknownMethod, violations["method"])
}
