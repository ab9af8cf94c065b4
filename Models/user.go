package Models

import (
	"Evexia/Utils/Token"
	"errors"
	"fmt"
	"html"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string        `gorm:"size:255;not null;unique" json:"username"`
	Email     string        `gorm:"size:255;not null;unique" json:"email"`
	Password  string        `gorm:"size:255;not null;" json:"password"`
	Tokens    []DeviceToken `gorm:"foreignKey:UserID"`
	IsFrozen  bool          `json:"is_frozen"`
	AccountID uint          `json:"account_id"`
}

type DeviceToken struct {
	gorm.Model
	UserID uint
	Value  string `json:"value" gorm:"unique"`
}

func GetUserByID(uid uint) (User, error) {
	var user User

	if err := DB.First(&user, uid).Error; err != nil {
		return user, errors.New("User not found")
	}

	user.PrepareGive()

	return user, nil
}

func GetUserAccountID(uid uint) (uint, error) {
	var account_id uint
	if err := DB.Model(&User{}).Where("id = ?", uid).Select("account_id").First(&account_id).Error; err != nil {
		return 0, errors.New("Account not found")
	}

	return account_id, nil
}

// GetAccountFCMsByID collects the device tokens of every user in the same
// account as the given user, deduplicated.
func GetAccountFCMsByID(uid uint) ([]string, error) {
	var fcms []string

	var user User
	if err := DB.First(&user, uid).Error; err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}

	var users []User
	if err := DB.Where("account_id = ?", user.AccountID).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users in account: %w", err)
	}

	uniqueFCMs := make(map[string]struct{})

	for _, accountUser := range users {
		var tokens []DeviceToken
		if err := DB.Where("user_id = ?", accountUser.ID).Find(&tokens).Error; err != nil {
			return nil, fmt.Errorf("failed to find tokens for user %d: %w", accountUser.ID, err)
		}

		for _, token := range tokens {
			uniqueFCMs[token.Value] = struct{}{}
		}
	}

	for token := range uniqueFCMs {
		fcms = append(fcms, token)
	}

	return fcms, nil
}

func (user *User) ChangeState() {
	user.IsFrozen = !user.IsFrozen
}

func (user *User) PrepareGive() {
	user.Password = ""
}

func VerifyPassword(password, hashedPassword string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func LoginCheck(username string, password string) (uint, string, error) {

	var err error

	user := User{}

	err = DB.Model(User{}).Where("username = ?", username).Take(&user).Error

	if err != nil {
		return 0, "", err
	}

	err = VerifyPassword(password, user.Password)

	if err != nil && err == bcrypt.ErrMismatchedHashAndPassword {
		return 0, "", err
	}

	token, err := Token.GenerateToken(user.ID)

	if err != nil {
		return 0, "", err
	}

	return user.ID, token, nil
}

func (user *User) SaveUser() (*User, error) {

	if err := user.BeforeSave(); err != nil {
		return &User{}, err
	}

	if err := DB.Create(&user).Error; err != nil {
		return &User{}, err
	}

	return user, nil
}

func (user *User) BeforeSave() error {

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	user.Username = html.EscapeString(strings.TrimSpace(user.Username))
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))

	return nil
}
