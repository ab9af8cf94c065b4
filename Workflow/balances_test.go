package Workflow

import (
	"testing"

	"Evexia/Models"

	"github.com/stretchr/testify/assert"
)

func TestBalanceDue(t *testing.T) {
	assert.Equal(t, 60.0, BalanceDue(100, 40))
	assert.Equal(t, 0.0, BalanceDue(50, 50))
	// Negative means the client is in credit
	assert.Equal(t, -25.0, BalanceDue(0, 25))
}

func TestNonZeroBalancesSuppressesSettledClients(t *testing.T) {
	balances := []ClientBalance{
		{ClientID: 1, TotalBilled: 100, TotalPaid: 40, BalanceDue: 60},
		{ClientID: 2, TotalBilled: 80, TotalPaid: 80, BalanceDue: 0},
		{ClientID: 3, TotalBilled: 10, TotalPaid: 35, BalanceDue: -25},
	}

	due := NonZeroBalances(balances)
	assert.Len(t, due, 2)
	assert.Equal(t, uint(1), due[0].ClientID)
	assert.Equal(t, uint(3), due[1].ClientID)
}

func TestNonZeroBalancesEmpty(t *testing.T) {
	assert.Empty(t, NonZeroBalances(nil))
	assert.Empty(t, NonZeroBalances([]ClientBalance{{ClientID: 1}}))
}

func TestRevenueSumsPaymentsNotBilledAmounts(t *testing.T) {
	payments := []Models.Payment{{Amount: 50}, {Amount: 30}}
	sessions := []Models.Session{{BillAmount: 80}, {BillAmount: 80}}

	assert.Equal(t, 80.0, TotalPaid(payments))
	assert.Equal(t, 160.0, TotalBilled(sessions))
	assert.NotEqual(t, TotalPaid(payments), TotalBilled(sessions))
}

func TestTotalPaidEmpty(t *testing.T) {
	assert.Equal(t, 0.0, TotalPaid(nil))
	assert.Equal(t, 0.0, TotalBilled(nil))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "60.00", FormatAmount(60))
	assert.Equal(t, "45.50", FormatAmount(45.5))
	assert.Equal(t, "0.00", FormatAmount(0))
	// Rounding happens only at display time
	assert.Equal(t, "33.33", FormatAmount(10.0+23.333))
}
