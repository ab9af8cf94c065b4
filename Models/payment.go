package Models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentCash  = "cash"
	PaymentCard  = "card"
	PaymentBank  = "bank"
	PaymentOther = "other"
)

type Payment struct {
	gorm.Model
	AccountID uint      `json:"account_id"`
	ClientID  uint      `json:"client_id"`
	SessionID *uint     `json:"session_id" gorm:"default:null"`
	Amount    float64   `json:"amount"`
	Method    string    `json:"method"`
	PaidAt    time.Time `json:"paid_at"`
	Notes     string    `json:"notes"`
}
