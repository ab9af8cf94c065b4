package Middleware

import (
	"net/http"

	"Evexia/Models"
	"Evexia/Utils/Token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func JwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		err := Token.TokenValid(c)
		if err != nil {
			c.String(http.StatusUnauthorized, "Unauthorized Token Invalid")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetAccount resolves the caller's account and stores an account-scoped DB
// handle on the context. Every row a handler touches through it is filtered
// to the caller's account.
func SetAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := Token.ExtractTokenID(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user, err := Models.GetUserByID(userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
			c.Abort()
			return
		}

		c.Set("accountID", user.AccountID)

		scoped := func() *gorm.DB {
			return Models.DB.Where("account_id = ?", user.AccountID)
		}
		c.Set("db", scoped)
		c.Next()
	}
}
