package Controllers

import (
	"net/http"
	"time"

	"Evexia/Models"
	"Evexia/SSE"
	"Evexia/Validation"

	"github.com/gin-gonic/gin"
)

func CreatePayment(c *gin.Context) {
	var form Validation.PaymentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if violations := Validation.ValidatePayment(form); !violations.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"violations": violations})
		return
	}

	accountID := getAccountID(c)
	db := getScopedDB(c)
	var client Models.Client
	if err := db.Model(&Models.Client{}).Where("clients.id = ?", form.ClientID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
		return
	}

	payment := Models.Payment{
		AccountID: accountID,
		ClientID:  form.ClientID,
		SessionID: form.SessionID,
		Amount:    form.Amount,
		Method:    form.Method,
		PaidAt:    time.Now(),
		Notes:     form.Notes,
	}

	if err := Models.DB.Create(&payment).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	Models.RecordAudit(Models.DB, accountID, "payments", payment.ID, "create", "")
	SSE.Hub.Broadcast(SSE.KeyPayments)
	c.JSON(http.StatusOK, payment)
}

func FetchRecentPayments(c *gin.Context) {
	db := getScopedDB(c)
	var payments []Models.Payment
	if err := db.Model(&Models.Payment{}).Order("paid_at DESC").Limit(50).Find(&payments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func FetchClientPayments(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var payments []Models.Payment
	if err := db.Model(&Models.Payment{}).Where("client_id = ?", input.ClientID).
		Order("paid_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, payments)
}
