package Models

import (
	"time"

	"gorm.io/gorm"
)

type Session struct {
	gorm.Model
	AccountID              uint      `json:"account_id"`
	ClientID               uint      `json:"client_id"`
	PackageID              *uint     `json:"package_id" gorm:"default:null"`
	StartedAt              time.Time `json:"started_at"`
	DurationMinutes        uint      `json:"duration_minutes"`
	Notes                  string    `json:"notes"`
	BillAmount             float64   `json:"bill_amount"`
	SessionNumberInPackage *uint     `json:"session_number_in_package" gorm:"default:null"`
}
