package Workflow

import (
	"Evexia/Models"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotScheduled = errors.New("appointment is not in the scheduled state")

// GormStore backs the completion cascade with the database.
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) MarkAppointmentCompleted(appointmentID uint) (Models.Appointment, error) {
	var appointment Models.Appointment
	if err := s.DB.Model(&Models.Appointment{}).Where("id = ?", appointmentID).First(&appointment).Error; err != nil {
		return Models.Appointment{}, err
	}

	if appointment.IsTerminal() {
		return Models.Appointment{}, ErrNotScheduled
	}

	if err := s.DB.Model(&Models.Appointment{}).Where("id = ?", appointmentID).
		Update("status", Models.AppointmentCompleted).Error; err != nil {
		return Models.Appointment{}, err
	}

	appointment.Status = Models.AppointmentCompleted
	Models.RecordAudit(s.DB, appointment.AccountID, "appointments", appointment.ID, "status_completed", "")
	return appointment, nil
}

func (s *GormStore) CreateSession(accountID uint, clientID uint, startedAt time.Time) (Models.Session, error) {
	return CreateSession(s.DB, SessionInput{
		AccountID: accountID,
		ClientID:  clientID,
		StartedAt: startedAt,
	})
}
