package models

import "gorm.io/gorm"

const (
	AlertCalorieLimit = "calorie_limit"
	AlertSpendLimit   = "spend_limit"
)

type Alert struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	Type    string `gorm:"size:32;not null"`
	Message string `gorm:"not null"`
}
