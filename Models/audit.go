package Models

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AuditEntry struct {
	gorm.Model
	AccountID uint   `json:"account_id"`
	TableName string `json:"table_name"`
	RowID     uint   `json:"row_id"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

// RecordAudit writes an audit row. Audit failures are logged and swallowed;
// they never fail the operation that triggered them.
func RecordAudit(db *gorm.DB, accountID uint, table string, rowID uint, action string, details string) {
	entry := AuditEntry{
		AccountID: accountID,
		TableName: table,
		RowID:     rowID,
		Action:    action,
		Details:   details,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Error().Err(err).Str("table", table).Str("action", action).Msg("Failed to write audit entry")
	}
}
