package models

import (
	"os"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleGeneral = "general"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string // bcrypt hash; empty until the invite password step completes
	Role     string `gorm:"not null;default:general"`
}

// BootstrapAdminEmail is the distinguished account that always gets the
// admin role, regardless of what the caller asked for.
func BootstrapAdminEmail() string {
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		return v
	}
	return "admin@caler.com"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Email == BootstrapAdminEmail() {
		u.Role = RoleAdmin
	}
	if u.Role == "" {
		u.Role = RoleGeneral
	}
	return nil
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
