package models

import "gorm.io/gorm"

const (
	DefaultCalorieLimit    = 2100
	DefaultSpendLimitCents = 100000 // 1000.00
)

// DailyLimit holds the per-user thresholds that trigger alerts when a
// day's bucket crosses them. Rows are created lazily; absent row means
// the defaults apply.
type DailyLimit struct {
	gorm.Model
	UserID          uint  `gorm:"uniqueIndex;not null"`
	CalorieLimit    int   `gorm:"not null;default:2100"`
	SpendLimitCents int64 `gorm:"not null;default:100000"`
}
