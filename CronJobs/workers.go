package CronJobs

import (
	"Evexia/FirebaseMessaging"
	"Evexia/Models"
	"Evexia/SSE"
	"fmt"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Workers runs the background jobs: pushing appointment reminders to the
// practice's registered devices and expiring packages past their end date.
type Workers struct {
	DB *gorm.DB
}

func NewWorkers(db *gorm.DB) *Workers {
	return &Workers{
		DB: db,
	}
}

func (w *Workers) Start() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(15).Minutes().Do(func() {
		if err := w.SendAppointmentReminders(); err != nil {
			log.Error().Err(err).Msg("Error sending appointment reminders")
		}
	})

	scheduler.Every(1).Day().At("00:10").Do(func() {
		if err := w.ExpirePackages(); err != nil {
			log.Error().Err(err).Msg("Error expiring packages")
		}
	})

	scheduler.StartAsync()
	log.Info().Msg("Background workers started")

	return scheduler
}

// SendAppointmentReminders notifies the account's devices about scheduled
// appointments starting within the next three hours. Each appointment is
// reminded once.
func (w *Workers) SendAppointmentReminders() error {
	now := time.Now()
	windowEnd := now.Add(3 * time.Hour)

	var appointments []Models.Appointment
	result := w.DB.
		Where("status = ? AND reminder_sent = ? AND start_time BETWEEN ? AND ?",
			Models.AppointmentScheduled, false, now, windowEnd).
		Find(&appointments)
	if result.Error != nil {
		return fmt.Errorf("failed to query upcoming appointments: %w", result.Error)
	}

	for _, appointment := range appointments {
		var client Models.Client
		if err := w.DB.First(&client, appointment.ClientID).Error; err != nil {
			log.Error().Err(err).Uint("appointment_id", appointment.ID).Msg("Failed to find client for appointment")
			continue
		}

		var users []Models.User
		if err := w.DB.Where("account_id = ?", appointment.AccountID).Find(&users).Error; err != nil {
			log.Error().Err(err).Uint("appointment_id", appointment.ID).Msg("Failed to find account users")
			continue
		}

		var tokens []string
		for _, user := range users {
			fcms, err := Models.GetAccountFCMsByID(user.ID)
			if err == nil {
				tokens = append(tokens, fcms...)
				break
			}
		}
		if len(tokens) == 0 {
			continue
		}

		body := fmt.Sprintf("%s %s at %s", client.LastName, client.FirstName,
			appointment.StartTime.Format("15:04"))
		if err := FirebaseMessaging.SendMessage(Models.NotificationRequest{
			Tokens: tokens,
			Title:  "Upcoming appointment",
			Body:   body,
		}); err != nil {
			log.Error().Err(err).Uint("appointment_id", appointment.ID).Msg("Failed to send reminder")
			continue
		}

		if err := w.DB.Model(&Models.Appointment{}).Where("id = ?", appointment.ID).
			Update("reminder_sent", true).Error; err != nil {
			log.Error().Err(err).Uint("appointment_id", appointment.ID).Msg("Failed to mark reminder sent")
		}
	}

	return nil
}

// ExpirePackages marks active packages whose end date has passed as
// expired.
func (w *Workers) ExpirePackages() error {
	today := time.Now().Format("2006-01-02")

	result := w.DB.Model(&Models.Package{}).
		Where("status = ? AND end_date IS NOT NULL AND end_date::date < ?::date", Models.PackageActive, today).
		Update("status", Models.PackageExpired)
	if result.Error != nil {
		return fmt.Errorf("failed to expire packages: %w", result.Error)
	}

	if result.RowsAffected > 0 {
		log.Info().Int64("count", result.RowsAffected).Msg("Expired packages")
		SSE.Hub.Broadcast(SSE.KeyPackages)
	}
	return nil
}
