package services

import (
	"errors"
	"log"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/models"
	"github.com/aditya-yaduvanshi/calorie-tracker/utils"

	"gorm.io/gorm"
)

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

func issueTokens(u *models.User) (TokenPair, error) {
	access, err := utils.GenerateAccessToken(u.ID, u.Name, u.Email, u.Role)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := utils.GenerateRefreshToken(u.ID, u.Name, u.Email, u.Role)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// RegisterUser creates an account and, for general users, seeds an
// empty ledger bucket so the analytics document exists from day one.
func RegisterUser(name, email, password string) (*models.User, error) {
	if !utils.IsName(name) || !utils.IsEmail(email) || !utils.IsPassword(password) {
		return nil, validationErr("Invalid name, email or password.")
	}

	var count int64
	if err := config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	user := models.User{Name: name, Email: email, Password: hashed}
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

// SignIn reports unknown email and wrong password identically to the
// caller; the two cases stay distinguishable in the server log.
func SignIn(email, password string) (*models.User, TokenPair, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("signin rejected: unknown email %q", email)
			return nil, TokenPair{}, ErrInvalidCredentials
		}
		return nil, TokenPair{}, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		log.Printf("signin rejected: password mismatch for user %d", user.ID)
		return nil, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := issueTokens(&user)
	if err != nil {
		return nil, TokenPair{}, err
	}
	return &user, pair, nil
}

// RefreshTokens rotates the pair. A valid token referencing a deleted
// user yields ErrUserNotFound so the client fully clears its session
// instead of retrying.
func RefreshTokens(refresh string) (TokenPair, error) {
	payload, err := utils.VerifyRefreshToken(refresh)
	if err != nil {
		return TokenPair{}, utils.ErrInvalidToken
	}

	var user models.User
	if err := config.DB.Where("email = ?", payload.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TokenPair{}, ErrUserNotFound
		}
		return TokenPair{}, err
	}
	return issueTokens(&user)
}
