package Controllers

import (
	"net/http"
	"strconv"
	"time"

	"Evexia/Models"
	"Evexia/Workflow"

	"github.com/gin-gonic/gin"
)

// Dashboard returns the landing-page counters. Revenue is what was paid in
// the period; billed session amounts are reported separately. Amounts stay
// unrounded until display.
func Dashboard(c *gin.Context) {
	db := getScopedDB(c)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart, _ := weekWindow(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var todaySessions, weekSessions, monthSessions int64
	if err := db.Model(&Models.Session{}).Where("started_at >= ?", today).Count(&todaySessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := getScopedDB(c).Model(&Models.Session{}).Where("started_at >= ?", weekStart).Count(&weekSessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := getScopedDB(c).Model(&Models.Session{}).Where("started_at >= ?", monthStart).Count(&monthSessions).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var todayPayments []Models.Payment
	if err := getScopedDB(c).Model(&Models.Payment{}).Where("paid_at >= ?", today).Find(&todayPayments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var monthPayments []Models.Payment
	if err := getScopedDB(c).Model(&Models.Payment{}).Where("paid_at >= ?", monthStart).Find(&monthPayments).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var monthSessionRows []Models.Session
	if err := getScopedDB(c).Model(&Models.Session{}).Where("started_at >= ?", monthStart).Find(&monthSessionRows).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"today_sessions": todaySessions,
		"week_sessions":  weekSessions,
		"month_sessions": monthSessions,
		"today_revenue":  Workflow.FormatAmount(Workflow.TotalPaid(todayPayments)),
		"month_revenue":  Workflow.FormatAmount(Workflow.TotalPaid(monthPayments)),
		"month_billed":   Workflow.FormatAmount(Workflow.TotalBilled(monthSessionRows)),
	})
}

// FetchClientBalances returns the balance report. Settled clients are
// suppressed.
func FetchClientBalances(c *gin.Context) {
	accountID := getAccountID(c)
	balances, err := Workflow.ClientBalances(Models.DB, accountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, Workflow.NonZeroBalances(balances))
}

// FetchClientBalance returns one client's balance row, or null when the
// client has no activity.
func FetchClientBalance(c *gin.Context) {
	var input struct {
		ClientID uint `json:"client_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	accountID := getAccountID(c)
	balances, err := Workflow.ClientBalances(Models.DB, accountID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	for _, balance := range balances {
		if balance.ClientID == input.ClientID {
			c.JSON(http.StatusOK, balance)
			return
		}
	}
	c.JSON(http.StatusOK, nil)
}

func FetchSessionsPerDay(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return
	}

	accountID := getAccountID(c)
	counts, err := Workflow.SessionsPerDay(Models.DB, accountID, from, to)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}

func FetchSessionsPerMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}

	accountID := getAccountID(c)
	counts, err := Workflow.SessionsPerMonth(Models.DB, accountID, year)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, counts)
}
