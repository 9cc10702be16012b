package services

import (
	"errors"

	"github.com/aditya-yaduvanshi/calorie-tracker/config"
	"github.com/aditya-yaduvanshi/calorie-tracker/models"
	"github.com/aditya-yaduvanshi/calorie-tracker/utils"

	"gorm.io/gorm"
)

// ListUsers returns every account except the caller's own.
func ListUsers(excludeID uint) ([]models.User, error) {
	var users []models.User
	err := config.DB.Where("id <> ?", excludeID).Order("id").Find(&users).Error
	return users, err
}

// CreateUser is the admin variant of registration: the role is
// caller-chosen, and general users still get a bootstrap ledger.
func CreateUser(name, email, password, role string) (*models.User, error) {
	if !utils.IsName(name) || !utils.IsEmail(email) || !utils.IsPassword(password) || !utils.IsRole(role) {
		return nil, validationErr("Invalid name, email, password or role.")
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
	user := models.User{Name: name, Email: email, Password: hashed, Role: role}
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

type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Role     *string
}

// UpdateUser patches profile fields. Only the account owner or an admin
// may touch a user; role changes are admin-only and ignored for
// everyone else.
func UpdateUser(actor *utils.TokenPayload, id uint, in UpdateUserInput) (*models.User, error) {
	if actor.Role != models.RoleAdmin && actor.ID != id {
		return nil, ErrUserNotFound
	}
	if in.Name == nil && in.Email == nil && in.Password == nil && (in.Role == nil || actor.Role != models.RoleAdmin) {
		return nil, validationErr("Body should not be empty.")
	}
	if in.Name != nil && !utils.IsName(*in.Name) {
		return nil, validationErr("Invalid name.")
	}
	if in.Email != nil && !utils.IsEmail(*in.Email) {
		return nil, validationErr("Invalid email.")
	}
	if in.Password != nil && !utils.IsPassword(*in.Password) {
		return nil, validationErr("Invalid password.")
	}
	if in.Role != nil && actor.Role == models.RoleAdmin && !utils.IsRole(*in.Role) {
		return nil, validationErr("Invalid role.")
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if in.Email != nil && *in.Email != user.Email {
		var count int64
		if err := config.DB.Model(&models.User{}).Where("email = ?", *in.Email).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailTaken
		}
		user.Email = *in.Email
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Role != nil && actor.Role == models.RoleAdmin {
		user.Role = *in.Role
	}
	if in.Password != nil {
		hashed, err := utils.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the account. Entries and ledger rows are left in
// place; see DESIGN.md for the open question on cascading.
func DeleteUser(actor *utils.TokenPayload, id uint) error {
	if actor.Role != models.RoleAdmin && actor.ID != id {
		return ErrUserNotFound
	}
	return config.DB.Delete(&models.User{}, id).Error
}
