package Controllers

import (
	"net/http"
	"time"

	"Evexia/Models"
	"Evexia/SSE"
	"Evexia/Validation"
	"Evexia/Workflow"

	"github.com/gin-gonic/gin"
)

func CreateAppointment(c *gin.Context) {
	var form Validation.AppointmentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := Validation.ValidateAppointment(form); !violations.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"violations": violations})
		return
	}

	accountID := getAccountID(c)
	if accountID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: Account Not Set"})
		return
	}

	db := getScopedDB(c)
	var client Models.Client
	if err := db.Model(&Models.Client{}).Where("clients.id = ?", form.ClientID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
		return
	}

	appointment := Models.Appointment{
		AccountID: accountID,
		ClientID:  form.ClientID,
		StartTime: form.StartTime,
		Status:    Models.AppointmentScheduled,
		Notes:     form.Notes,
	}
	if form.EndClock != "" {
		end, err := Validation.ResolveEnd(form.StartTime, form.EndClock)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid end time"})
			return
		}
		appointment.EndTime = &end
	}

	if err := Models.DB.Create(&appointment).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	Models.RecordAudit(Models.DB, accountID, "appointments", appointment.ID, "create", "")
	SSE.Hub.Broadcast(SSE.KeyAppointments)
	c.JSON(http.StatusOK, gin.H{"message": "Appointment created successfully", "appointment_id": appointment.ID})
}

func FetchClientAppointments(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var appointments []Models.Appointment
	if err := db.Model(&Models.Appointment{}).Where("client_id = ?", input.ClientID).
		Order("start_time DESC").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

// weekWindow returns the Monday-start week containing day, as a half-open
// [start, end) range in day's location.
func weekWindow(day time.Time) (time.Time, time.Time) {
	weekday := (int(day.Weekday()) + 6) % 7 // Monday = 0
	weekStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location()).
		AddDate(0, 0, -weekday)
	return weekStart, weekStart.AddDate(0, 0, 7)
}

// FetchWeekAppointments returns the appointments of the week containing the
// given day (Monday start), for the calendar view. The day parameter is read
// in server-local time, like the no-parameter default.
func FetchWeekAppointments(c *gin.Context) {
	day := time.Now()
	if value := c.Query("day"); value != "" {
		parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid day"})
			return
		}
		day = parsed
	}

	weekStart, weekEnd := weekWindow(day)

	db := getScopedDB(c)
	var appointments []Models.Appointment
	if err := db.Model(&Models.Appointment{}).
		Where("start_time >= ? AND start_time < ?", weekStart, weekEnd).
		Order("start_time").Find(&appointments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func transitionAppointment(c *gin.Context, status string, action string) {
	var input struct {
		ID uint `json:"ID"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var appointment Models.Appointment
	if err := db.Model(&Models.Appointment{}).Where("appointments.id = ?", input.ID).First(&appointment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	if appointment.IsTerminal() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Appointment is no longer scheduled"})
		return
	}

	if err := Models.DB.Model(&Models.Appointment{}).Where("id = ?", appointment.ID).
		Update("status", status).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	Models.RecordAudit(Models.DB, appointment.AccountID, "appointments", appointment.ID, action, "")
	SSE.Hub.Broadcast(SSE.KeyAppointments)
	c.JSON(http.StatusOK, gin.H{"message": "Marked Successfully"})
}

func CancelAppointment(c *gin.Context) {
	transitionAppointment(c, Models.AppointmentCancelled, "status_cancelled")
}

func MarkAppointmentAsNoShow(c *gin.Context) {
	transitionAppointment(c, Models.AppointmentNoShow, "status_no_show")
}

// CompleteAppointment runs the two-step completion cascade: the status
// update first, then the optional session recording. A session failure
// after the status update succeeded is reported but not rolled back.
func CompleteAppointment(c *gin.Context) {
	var input struct {
		ID            uint `json:"ID"`
		RecordSession bool `json:"record_session"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var appointment Models.Appointment
	if err := db.Model(&Models.Appointment{}).Where("appointments.id = ?", input.ID).First(&appointment).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
		return
	}

	store := &Workflow.GormStore{DB: Models.DB}
	completion := Workflow.CompleteAppointment(store, appointment.ID, input.RecordSession)

	switch completion.State {
	case Workflow.FailedStatusUpdate:
		c.JSON(http.StatusBadRequest, gin.H{"state": completion.State, "error": completion.Err.Error()})
		return
	case Workflow.FailedSessionCreate:
		SSE.Hub.Broadcast(SSE.KeyAppointments)
		c.JSON(http.StatusOK, gin.H{"state": completion.State, "error": completion.Err.Error()})
		return
	}

	SSE.Hub.Broadcast(SSE.KeyAppointments)
	if completion.State == Workflow.CompletedWithSession {
		SSE.Hub.Broadcast(SSE.KeySessions)
		SSE.Hub.Broadcast(SSE.KeyPackages)
	}
	c.JSON(http.StatusOK, gin.H{"state": completion.State, "session": completion.Session})
}
