package Controllers

import (
	"Evexia/Models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func getScopedDB(c *gin.Context) *gorm.DB {
	db, exists := c.Get("db")
	if !exists {
		return Models.DB
	}

	scoped, ok := db.(func() *gorm.DB)
	if !ok {
		return Models.DB
	}
	return scoped()
}

func getAccountID(c *gin.Context) uint {
	id, exists := c.Get("accountID")
	if !exists {
		return 0
	}
	accountID, ok := id.(uint)
	if !ok {
		return 0
	}
	return accountID
}
