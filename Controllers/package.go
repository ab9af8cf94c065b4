package Controllers

import (
	"net/http"

	"Evexia/Models"
	"Evexia/SSE"

	"github.com/gin-gonic/gin"
)

func CreatePackage(c *gin.Context) {
	var input struct {
		ClientID        uint    `json:"client_id"`
		SessionsTotal   uint    `json:"sessions_total"`
		PricePerSession float64 `json:"price_per_session"`
		StartDate       string  `json:"start_date"`
		EndDate         string  `json:"end_date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.ClientID == 0 || input.SessionsTotal == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client and session count are required"})
		return
	}

	accountID := getAccountID(c)
	db := getScopedDB(c)
	var client Models.Client
	if err := db.Model(&Models.Client{}).Where("clients.id = ?", input.ClientID).First(&client).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Client not found"})
		return
	}

	pkg := Models.Package{
		AccountID:       accountID,
		ClientID:        input.ClientID,
		SessionsTotal:   input.SessionsTotal,
		PricePerSession: input.PricePerSession,
		StartDate:       parseDate(input.StartDate),
		EndDate:         parseDate(input.EndDate),
		Status:          Models.PackageActive,
	}

	if err := Models.DB.Create(&pkg).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	Models.RecordAudit(Models.DB, accountID, "packages", pkg.ID, "create", "")
	SSE.Hub.Broadcast(SSE.KeyPackages)
	c.JSON(http.StatusOK, pkg)
}

func FetchClientPackages(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var packages []Models.Package
	if err := db.Model(&Models.Package{}).Where("client_id = ?", input.ClientID).
		Order("start_date DESC NULLS LAST, id DESC").Find(&packages).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, packages)
}

// FetchClientActivePackage returns the client's current active package, or
// null when none is open.
func FetchClientActivePackage(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var pkg Models.Package
	if err := db.Model(&Models.Package{}).
		Where("client_id = ? AND status = ?", input.ClientID, Models.PackageActive).
		Order("start_date DESC NULLS LAST, id DESC").First(&pkg).Error; err != nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, pkg)
}
