package Models

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func AccountExists(id uint) (bool, error) {
	var count int64
	err := DB.Model(&Account{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func ConnectDataBase() {

	if err := godotenv.Load(".env"); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	DbHost := os.Getenv("DB_HOST")
	DbUser := os.Getenv("DB_USER")
	DbPassword := os.Getenv("DB_PASSWORD")
	DbName := os.Getenv("DB_NAME")
	DbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable", DbHost, DbUser, DbPassword, DbName, DbPort)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("Cannot connect to database")
	}
	log.Info().Str("db", DbName).Msg("Connected to database")

	// Tenancy first, then account-scoped rows
	DB.AutoMigrate(&Account{})
	DB.AutoMigrate(&AllowedEmail{})
	DB.AutoMigrate(&User{})
	DB.AutoMigrate(&DeviceToken{})

	DB.AutoMigrate(&Client{})
	DB.AutoMigrate(&Package{})
	DB.AutoMigrate(&Appointment{})
	DB.AutoMigrate(&Session{})
	DB.AutoMigrate(&Payment{})
	DB.AutoMigrate(&AuditEntry{})
}
