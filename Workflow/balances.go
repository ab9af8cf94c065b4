package Workflow

import (
	"fmt"

	"Evexia/Models"

	"gorm.io/gorm"
)

// ClientBalance is one row of the balance report. BalanceDue is
// total_billed - total_paid; positive means the client owes money.
type ClientBalance struct {
	ClientID    uint    `json:"client_id"`
	TotalBilled float64 `json:"total_billed"`
	TotalPaid   float64 `json:"total_paid"`
	BalanceDue  float64 `json:"balance_due"`
}

type DayCount struct {
	Day           string `json:"day"`
	SessionsCount int64  `json:"sessions_count"`
}

type MonthCount struct {
	Month         string `json:"month"`
	SessionsCount int64  `json:"sessions_count"`
}

// ClientBalances returns billed/paid totals for every client of the account
// with any billing or payment activity. Balances are computed here and
// nowhere else; callers must not re-derive these totals from raw rows.
func ClientBalances(db *gorm.DB, accountID uint) ([]ClientBalance, error) {
	var balances []ClientBalance
	err := db.Raw(`
		SELECT c.id AS client_id,
		       COALESCE(b.total_billed, 0) AS total_billed,
		       COALESCE(p.total_paid, 0) AS total_paid,
		       COALESCE(b.total_billed, 0) - COALESCE(p.total_paid, 0) AS balance_due
		FROM clients c
		LEFT JOIN (
			SELECT client_id, SUM(bill_amount) AS total_billed
			FROM sessions WHERE deleted_at IS NULL GROUP BY client_id
		) b ON b.client_id = c.id
		LEFT JOIN (
			SELECT client_id, SUM(amount) AS total_paid
			FROM payments WHERE deleted_at IS NULL GROUP BY client_id
		) p ON p.client_id = c.id
		WHERE c.deleted_at IS NULL
		  AND c.account_id = ?
		  AND (b.client_id IS NOT NULL OR p.client_id IS NOT NULL)
		ORDER BY c.id`, accountID).Scan(&balances).Error
	if err != nil {
		return nil, err
	}
	for i := range balances {
		balances[i].BalanceDue = BalanceDue(balances[i].TotalBilled, balances[i].TotalPaid)
	}
	return balances, nil
}

// BalanceDue applies the sign convention: positive means the client owes.
func BalanceDue(totalBilled float64, totalPaid float64) float64 {
	return totalBilled - totalPaid
}

// NonZeroBalances drops settled clients; a balance of zero is suppressed in
// aggregate displays.
func NonZeroBalances(balances []ClientBalance) []ClientBalance {
	var due []ClientBalance
	for _, balance := range balances {
		if balance.BalanceDue != 0 {
			due = append(due, balance)
		}
	}
	return due
}

// SessionsPerDay counts sessions per calendar day in the inclusive range
// [from, to], dates given as "2006-01-02".
func SessionsPerDay(db *gorm.DB, accountID uint, from string, to string) ([]DayCount, error) {
	var counts []DayCount
	err := db.Raw(`
		SELECT to_char(started_at, 'YYYY-MM-DD') AS day, COUNT(*) AS sessions_count
		FROM sessions
		WHERE deleted_at IS NULL
		  AND account_id = ?
		  AND started_at::date BETWEEN ?::date AND ?::date
		GROUP BY to_char(started_at, 'YYYY-MM-DD')
		ORDER BY day`, accountID, from, to).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// SessionsPerMonth counts sessions per month of the given year.
func SessionsPerMonth(db *gorm.DB, accountID uint, year int) ([]MonthCount, error) {
	var counts []MonthCount
	err := db.Raw(`
		SELECT to_char(started_at, 'YYYY-MM') AS month, COUNT(*) AS sessions_count
		FROM sessions
		WHERE deleted_at IS NULL
		  AND account_id = ?
		  AND EXTRACT(YEAR FROM started_at) = ?
		GROUP BY to_char(started_at, 'YYYY-MM')
		ORDER BY month`, accountID, year).Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// TotalPaid sums payment amounts. Revenue figures come from payments, never
// from billed session amounts.
func TotalPaid(payments []Models.Payment) float64 {
	var total float64
	for _, payment := range payments {
		total += payment.Amount
	}
	return total
}

// TotalBilled sums session bill amounts.
func TotalBilled(sessions []Models.Session) float64 {
	var total float64
	for _, session := range sessions {
		total += session.BillAmount
	}
	return total
}

// FormatAmount renders a monetary amount with two fraction digits. Amounts
// stay unrounded until this point.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
