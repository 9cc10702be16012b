package services

import (
	"errors"
	"log"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/models"
	"github.com/aditya-yaduvanshi/calorie-tracker/utils"

	"gorm.io/gorm"
)

// CreateInvite issues a 7-day invite token for the given person and
// emails it to them. Email delivery is best-effort; the token is
// returned to the caller either way.
func CreateInvite(name, email string) (string, error) {
	if !utils.IsName(name) {
		return "", validationErr("Invalid name.")
	}
	if !utils.IsEmail(email) {
		return "", validationErr("Invalid email.")
	}

	token, err := utils.GenerateInviteToken(name, email)
	if err != nil {
		return "", err
	}
	if err := utils.SendInviteEmail(email, name, token); err != nil {
		log.Printf("invite email to %s failed: %v", email, err)
	}
	return token, nil
}

// AcceptInvite materializes the invited account with no password set
// and a bootstrap ledger. Sign-in stays impossible until SetPassword.
func AcceptInvite(token string) (*models.User, error) {
	payload, err := utils.VerifyInviteToken(token)
	if err != nil {
		return nil, utils.ErrInvalidToken
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", payload.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	user := models.User{Name: payload.Name, Email: payload.Email}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		if err := NewLedgerService(config.DB).Bootstrap(user.ID); err != nil {
			return nil, err
		}
	}
	return &user, nil
}

// SetPassword completes the invite flow and signs the user in.
func SetPassword(email, password string) (*models.User, TokenPair, error) {
	if !utils.IsPassword(password) {
		return nil, TokenPair{}, validationErr("Password should contain at least 1 A-Z, 1 a-z, 1 0-9 and 1 special character, 6 to 15 characters long.")
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, TokenPair{}, ErrUserNotFound
		}
		return nil, TokenPair{}, err
	}
	// only invite-created accounts (no credential yet) may set a password
	// here; an account with a hash already in place is off limits
	if user.Password != "" {
		return nil, TokenPair{}, ErrUserNotFound
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, TokenPair{}, err
	}
	user.Password = hashed
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, TokenPair{}, err
	}

	pair, err := issueTokens(&user)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return &user, pair, nil
}
