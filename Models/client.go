package Models

import (
	"time"

	"gorm.io/gorm"
)

type Client struct {
	gorm.Model
	AccountID   uint       `json:"account_id"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	DateOfBirth *time.Time `json:"date_of_birth" gorm:"default:null"`
	AddressLine string     `json:"address_line"`
	Condition   string     `json:"condition"`
	Notes       string     `json:"notes"`
	Active      bool       `json:"active" gorm:"default:true"`
	GdprConsent bool       `json:"gdpr_consent"`
	ConsentDate *time.Time `json:"consent_date" gorm:"default:null"`

	Appointments []Appointment `json:"appointments"`
	Sessions     []Session     `json:"sessions"`
	Packages     []Package     `json:"packages"`
	Payments     []Payment     `json:"payments"`
}
