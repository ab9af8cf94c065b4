package Models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PackageActive    = "active"
	PackageCompleted = "completed"
	PackageExpired   = "expired"
)

type Package struct {
	gorm.Model
	AccountID       uint       `json:"account_id"`
	ClientID        uint       `json:"client_id"`
	SessionsTotal   uint       `json:"sessions_total"`
	SessionsUsed    uint       `json:"sessions_used"`
	PricePerSession float64    `json:"price_per_session"`
	StartDate       *time.Time `json:"start_date" gorm:"default:null"`
	EndDate         *time.Time `json:"end_date" gorm:"default:null"`
	Status          string     `json:"status" gorm:"default:active"`
}

// HasCapacity reports whether another session can still be drawn from the
// package. sessions_used never exceeds sessions_total.
func (p *Package) HasCapacity() bool {
	return p.Status == PackageActive && p.SessionsUsed < p.SessionsTotal
}
