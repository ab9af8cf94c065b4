package Controllers

import (
	"net/http"
	"time"

	"Evexia/Models"
	"Evexia/SSE"
	"Evexia/Validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil
	}
	return &t
}

func CreateClient(c *gin.Context) {
	var form Validation.ClientForm

	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if violations := Validation.ValidateClient(form, false); !violations.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"violations": violations})
		return
	}

	accountID := getAccountID(c)
	if accountID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: Account Not Set"})
		return
	}

	now := time.Now()
	client := Models.Client{
		AccountID:   accountID,
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		Phone:       form.Phone,
		Email:       form.Email,
		DateOfBirth: parseDate(form.DateOfBirth),
		AddressLine: form.AddressLine,
		Condition:   form.Condition,
		Notes:       form.Notes,
		Active:      true,
		GdprConsent: form.GdprConsent,
		ConsentDate: &now,
	}

	if err := Models.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	Models.RecordAudit(Models.DB, accountID, "clients", client.ID, "create", "")
	SSE.Hub.Broadcast(SSE.KeyClients)
	c.JSON(http.StatusOK, gin.H{"message": "Client created successfully", "client_id": client.ID})
}

func UpdateClient(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
		Validation.ClientForm
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Consent is not re-required on edit
	if violations := Validation.ValidateClient(input.ClientForm, true); !violations.OK() {
		c.JSON(http.StatusBadRequest, gin.H{"violations": violations})
		return
	}

	db := getScopedDB(c)
	var client Models.Client
	if err := db.Model(&Models.Client{}).Where("clients.id = ?", input.ID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	client.FirstName = input.FirstName
	client.LastName = input.LastName
	client.Phone = input.Phone
	client.Email = input.Email
	client.DateOfBirth = parseDate(input.DateOfBirth)
	client.AddressLine = input.AddressLine
	client.Condition = input.Condition
	client.Notes = input.Notes

	if err := Models.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	Models.RecordAudit(Models.DB, client.AccountID, "clients", client.ID, "update", "")
	SSE.Hub.Broadcast(SSE.KeyClients)
	c.JSON(http.StatusOK, gin.H{"message": "Client updated successfully"})
}

func FetchClients(c *gin.Context) {
	db := getScopedDB(c)
	var clients []Models.Client

	query := db.Model(&Models.Client{})
	if c.Query("include_archived") == "" {
		query = query.Where("active = ?", true)
	}

	if err := query.Order("last_name, first_name").Find(&clients).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func FetchClient(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var client Models.Client
	if err := db.Model(&Models.Client{}).Where("clients.id = ?", input.ID).
		Preload("Appointments", func(db2 *gorm.DB) *gorm.DB { return db2.Order("start_time DESC") }).
		Preload("Sessions", func(db2 *gorm.DB) *gorm.DB { return db2.Order("started_at DESC") }).
		Preload("Packages").
		Preload("Payments", func(db2 *gorm.DB) *gorm.DB { return db2.Order("paid_at DESC") }).
		First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, client)
}

// ArchiveClient soft-deletes a client by flipping the active flag off.
// Clients are never hard-deleted.
func ArchiveClient(c *gin.Context) {
	var input struct {
		ID uint `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var client Models.Client
	if err := db.Model(&Models.Client{}).Where("clients.id = ?", input.ID).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	if err := Models.DB.Model(&Models.Client{}).Where("id = ?", client.ID).Update("active", false).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	Models.RecordAudit(Models.DB, client.AccountID, "clients", client.ID, "archive", "")
	SSE.Hub.Broadcast(SSE.KeyClients)
	c.JSON(http.StatusOK, gin.H{"message": "Client archived successfully"})
}
