package Controllers

import (
	"net/http"
	"time"

	"Evexia/Models"
	"Evexia/SSE"
	"Evexia/Workflow"

	"github.com/gin-gonic/gin"
)

// CreateSession records a session directly (outside the appointment
// cascade). Package linkage, numbering and billing are resolved by the
// session procedure, never by the caller.
func CreateSession(c *gin.Context) {
	var input struct {
		ClientID        uint      `json:"client_id"`
		StartedAt       time.Time `json:"started_at"`
		DurationMinutes uint      `json:"duration_minutes"`
		Notes           string    `json:"notes"`
		BillAmount      float64   `json:"bill_amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ClientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client is required"})
		return
	}

	accountID := getAccountID(c)
	db := getScopedDB(c)
	var client Models.Client
	if err := db.Model(&Models.Client{}).Where("clients.id = ?", input.ClientID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
		return
	}

	session, err := Workflow.CreateSession(Models.DB, Workflow.SessionInput{
		AccountID:       accountID,
		ClientID:        input.ClientID,
		StartedAt:       input.StartedAt,
		DurationMinutes: input.DurationMinutes,
		Notes:           input.Notes,
		BillAmount:      input.BillAmount,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	Models.RecordAudit(Models.DB, accountID, "sessions", session.ID, "create", "")
	SSE.Hub.Broadcast(SSE.KeySessions)
	SSE.Hub.Broadcast(SSE.KeyPackages)
	c.JSON(http.StatusOK, session)
}

func FetchClientSessions(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var sessions []Models.Session
	if err := db.Model(&Models.Session{}).Where("client_id = ?", input.ClientID).
		Order("started_at DESC").Find(&sessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}
