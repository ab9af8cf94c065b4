package Models

import (
	"strings"

	"gorm.io/gorm"
)

type Account struct {
	gorm.Model
	Name string `json:"name" gorm:"unique"`
}

// AllowedEmail gates self-service registration: an email must be listed
// here before a user can sign up with it.
type AllowedEmail struct {
	gorm.Model
	Email string `json:"email" gorm:"unique"`
}

func IsEmailAllowed(email string) (bool, error) {
	var count int64
	err := DB.Model(&AllowedEmail{}).Where("email = ?", strings.ToLower(strings.TrimSpace(email))).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
