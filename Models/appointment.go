package Models

import (
	"time"

	"gorm.io/gorm"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
	AppointmentNoShow    = "no_show"
)

type Appointment struct {
	gorm.Model
	AccountID uint       `json:"account_id"`
	ClientID  uint       `json:"client_id"`
	StartTime time.Time  `json:"start_time"`
	EndTime   *time.Time `json:"end_time" gorm:"default:null"`
	Status    string     `json:"status" gorm:"default:scheduled"`
	Notes     string     `json:"notes"`

	ReminderSent bool `json:"reminder_sent"`
}

// IsTerminal reports whether the appointment has left the scheduled state.
// No transitions are defined out of a terminal status.
func (a *Appointment) IsTerminal() bool {
	return a.Status != AppointmentScheduled
}
