package Controllers

import (
	"fmt"
	"net/http"

	"Evexia/Models"
	"Evexia/Workflow"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ExportPaymentsTable writes the account's payments in a date range to a
// spreadsheet and serves the file.
func ExportPaymentsTable(c *gin.Context) {
	var input struct {
		DateFrom string `json:"date_from"`
		DateTo   string `json:"date_to"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := getScopedDB(c)
	var payments []Models.Payment

	if input.DateFrom != "" && input.DateTo != "" {
		if err := db.Model(&Models.Payment{}).
			Where("paid_at::date BETWEEN ?::date AND ?::date", input.DateFrom, input.DateTo).
			Order("paid_at").Find(&payments).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		if err := db.Model(&Models.Payment{}).Order("paid_at").Find(&payments).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	headers := map[string]string{
		"A1": "Date",
		"B1": "Client",
		"C1": "Amount",
		"D1": "Method",
		"E1": "Notes",
	}
	file := excelize.NewFile()
	sheet := "Payments"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(payments); i++ {
		appendRowPayments(sheet, file, i, payments)
	}
	filename := "./Payments.xlsx"
	if err := file.SaveAs(filename); err != nil {
		log.Error().Err(err).Msg("Failed to save payments export")
	}
	c.File(filename)
}

func appendRowPayments(sheet string, file *excelize.File, index int, rows []Models.Payment) *excelize.File {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].PaidAt.Format("2006-01-02 15:04"))
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].ClientID)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), Workflow.FormatAmount(rows[index].Amount))
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), rows[index].Method)
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), rows[index].Notes)
	return file
}
